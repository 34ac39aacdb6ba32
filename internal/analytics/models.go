package analytics

import (
	"encoding/json"
	"time"
)

// QueryEvent is one resolved assistant query, published to the analytics
// stream so venue staff can see what visitors actually ask for.
type QueryEvent struct {
	ID             string        `json:"id"`
	SessionID      string        `json:"session_id,omitempty"`
	Query          string        `json:"query"`
	MatchedRule    string        `json:"matched_rule"`
	HighlightedIDs []string      `json:"highlighted_ids,omitempty"`
	Latency        time.Duration `json:"latency_ms"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (e *QueryEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey routes events for one session to one partition, preserving
// per-visitor ordering. Anonymous queries partition by event id.
func (e *QueryEvent) GetPartitionKey() string {
	if e.SessionID != "" {
		return e.SessionID
	}
	return e.ID
}
