package assistant

// ActionType distinguishes single- from multi-location highlights.
type ActionType string

const (
	ActionHighlightLocation  ActionType = "highlight_location"
	ActionHighlightLocations ActionType = "highlight_locations"
)

// Action tells the map surface what to emphasize after an answer.
type Action struct {
	Type        ActionType `json:"type"`
	LocationID  string     `json:"location_id,omitempty"`
	LocationIDs []string   `json:"location_ids,omitempty"`
}

// Response is the assistant's answer to one query: the spoken/printed text
// and an optional highlight instruction. It is ephemeral, produced per query
// and never stored.
type Response struct {
	Text   string  `json:"text"`
	Action *Action `json:"action"`
}

// HighlightedIDs flattens the action into the list of location ids it
// highlights, empty when there is no action.
func (r *Response) HighlightedIDs() []string {
	if r.Action == nil {
		return nil
	}
	if r.Action.Type == ActionHighlightLocation {
		return []string{r.Action.LocationID}
	}
	return r.Action.LocationIDs
}
