package assistant

import (
	"context"
	"math/rand"
	"time"

	"wayfinder/internal/analytics"
	"wayfinder/internal/session"
	"wayfinder/internal/shared/config"
	"wayfinder/internal/speech"
	"wayfinder/internal/venue"
	"wayfinder/pkg/geo"
	"wayfinder/pkg/logger"

	"github.com/google/uuid"
)

// QueryResult is the full answer to one assistant query: the resolved
// response plus, for single-location highlights, the directional overlay
// from the visitor's position to the target.
type QueryResult struct {
	Response
	Overlay *geo.Overlay `json:"overlay,omitempty"`
}

type Service interface {
	Query(ctx context.Context, req QueryRequest) (*QueryResult, error)
}

type service struct {
	venues    venue.Service
	sessions  session.Service
	relay     *speech.Relay
	publisher analytics.Publisher
	cfg       config.AssistantConfig
	log       *logger.Logger
}

func NewService(venues venue.Service, sessions session.Service, relay *speech.Relay,
	publisher analytics.Publisher, cfg config.AssistantConfig, log *logger.Logger) Service {
	return &service{
		venues:    venues,
		sessions:  sessions,
		relay:     relay,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
	}
}

// Query resolves a free-text query against the venue snapshot. When the
// request names a session, the visitor's position and voice settings come
// from that session; otherwise the venue default location answers and voice
// stays off. The simulated thinking delay runs before resolution and is
// cut short if the caller gives up.
func (s *service) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	start := time.Now()

	v := s.venues.Venue(ctx)
	from := v.CurrentLocation.Coordinates

	voiceEnabled := false
	voiceVolume := 0.0
	if req.SessionID != "" {
		sess, err := s.sessions.Get(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		if loc := v.LocationByID(sess.CurrentLocationID); loc != nil {
			from = loc.Coordinates
		}
		voiceEnabled = sess.VoiceEnabled
		voiceVolume = sess.VoiceVolume
	}

	if err := s.think(ctx); err != nil {
		return nil, err
	}

	resp, ruleName := Resolve(req.Query, v, from)

	result := &QueryResult{Response: resp}
	if resp.Action != nil && resp.Action.Type == ActionHighlightLocation {
		if loc := v.LocationByID(resp.Action.LocationID); loc != nil {
			overlay := geo.ComputeOverlay(from, loc.Coordinates)
			result.Overlay = &overlay
		}
	}

	// Drawing a path closes any open popup, matching the map behavior.
	if result.Overlay != nil && req.SessionID != "" {
		if _, err := s.sessions.DismissPopup(ctx, req.SessionID); err != nil {
			s.log.ErrorWithContext(ctx, "Failed to dismiss popup", err, map[string]interface{}{
				"session_id": req.SessionID,
			})
		}
	}

	s.relay.Speak(resp.Text, voiceVolume, voiceEnabled)
	s.publishEvent(req, &resp, ruleName, time.Since(start))
	s.log.LogQueryResolved(ctx, req.SessionID, ruleName, time.Since(start))

	return result, nil
}

// think sleeps a random duration inside the configured delay window, making
// the assistant feel like it is working. Returns early with the context's
// error if the caller disconnects mid-delay.
func (s *service) think(ctx context.Context) error {
	min, max := s.cfg.ThinkingDelayMin, s.cfg.ThinkingDelayMax
	if max <= 0 || max < min {
		return nil
	}

	delay := min
	if span := max - min; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span) + 1))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// publishEvent emits the query to the analytics stream in the background.
// Publishing is best effort: failures are logged and never surfaced to the
// visitor.
func (s *service) publishEvent(req QueryRequest, resp *Response, ruleName string, latency time.Duration) {
	event := &analytics.QueryEvent{
		ID:             uuid.New().String(),
		SessionID:      req.SessionID,
		Query:          req.Query,
		MatchedRule:    ruleName,
		HighlightedIDs: resp.HighlightedIDs(),
		Latency:        latency,
		CreatedAt:      time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.publisher.PublishQueryEvent(ctx, event); err != nil {
			s.log.ErrorWithContext(ctx, "Failed to publish query event", err, map[string]interface{}{
				"matched_rule": ruleName,
			})
		}
	}()
}
