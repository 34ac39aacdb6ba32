package session

import (
	"time"
)

// Zoom bounds and step mirror the map controls: each zoom-in multiplies by
// ZoomStep up to MaxZoom, each zoom-out divides down to MinZoom.
const (
	MinZoom  = 0.5
	MaxZoom  = 3.0
	ZoomStep = 1.2

	DefaultZoom   = 1.0
	DefaultVolume = 0.7
)

// DefaultTTL is how long an idle session survives before the registry
// reclaims it.
const DefaultTTL = 2 * time.Hour

// State is the per-visitor UI state: where they are on the map, how the map
// is zoomed, voice preferences and which location popup is open. It lives
// for one visit and is never persisted.
type State struct {
	ID                string    `json:"id"`
	CurrentLocationID string    `json:"current_location_id"`
	MapZoom           float64   `json:"map_zoom"`
	VoiceEnabled      bool      `json:"voice_enabled"`
	VoiceVolume       float64   `json:"voice_volume"`
	PopupLocationID   string    `json:"popup_location_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ZoomIn raises the zoom by one step, clamped to MaxZoom.
func (s *State) ZoomIn() {
	s.MapZoom = min(s.MapZoom*ZoomStep, MaxZoom)
}

// ZoomOut lowers the zoom by one step, clamped to MinZoom.
func (s *State) ZoomOut() {
	s.MapZoom = max(s.MapZoom/ZoomStep, MinZoom)
}

// ResetView restores the default zoom and dismisses any open popup.
func (s *State) ResetView() {
	s.MapZoom = DefaultZoom
	s.PopupLocationID = ""
}
