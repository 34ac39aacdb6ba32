package session

import (
	"context"
	"math"
	"testing"
	"time"

	"wayfinder/internal/venue"
	"wayfinder/pkg/geo"
)

func newTestService() Service {
	v := &venue.Venue{
		Name: "Test Hall",
		CurrentLocation: venue.Location{
			ID: "entrance", Name: "Entrance", Coordinates: geo.Point{X: 1, Y: 0},
		},
		Locations: []venue.Location{
			{ID: "r1", Name: "Restroom A", Type: venue.LocationTypeRestroom, Coordinates: geo.Point{X: 0, Y: 0}},
		},
	}
	return NewService(NewMemoryRepository(time.Hour), venue.NewService(v))
}

func TestCreateDefaults(t *testing.T) {
	s := newTestService()

	state, err := s.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if state.ID == "" {
		t.Error("session id is empty")
	}
	if state.CurrentLocationID != "entrance" {
		t.Errorf("current location = %q; want venue default", state.CurrentLocationID)
	}
	if state.MapZoom != DefaultZoom {
		t.Errorf("zoom = %v; want %v", state.MapZoom, DefaultZoom)
	}
	if !state.VoiceEnabled || state.VoiceVolume != DefaultVolume {
		t.Errorf("voice defaults = %v/%v; want enabled at %v", state.VoiceEnabled, state.VoiceVolume, DefaultVolume)
	}
}

func TestZoomClamping(t *testing.T) {
	s := newTestService()
	state, _ := s.Create(context.Background())
	ctx := context.Background()

	// Zooming in repeatedly saturates at MaxZoom.
	for i := 0; i < 20; i++ {
		var err error
		state, err = s.Zoom(ctx, state.ID, "in")
		if err != nil {
			t.Fatalf("Zoom in: %v", err)
		}
	}
	if state.MapZoom != MaxZoom {
		t.Errorf("zoom after saturating in = %v; want %v", state.MapZoom, MaxZoom)
	}

	// Zooming out repeatedly saturates at MinZoom.
	for i := 0; i < 30; i++ {
		state, _ = s.Zoom(ctx, state.ID, "out")
	}
	if state.MapZoom != MinZoom {
		t.Errorf("zoom after saturating out = %v; want %v", state.MapZoom, MinZoom)
	}

	// Single step from default.
	state, _ = s.Zoom(ctx, state.ID, "reset")
	state, _ = s.Zoom(ctx, state.ID, "in")
	if math.Abs(state.MapZoom-DefaultZoom*ZoomStep) > 1e-9 {
		t.Errorf("zoom after one step = %v; want %v", state.MapZoom, DefaultZoom*ZoomStep)
	}
}

func TestResetClearsPopup(t *testing.T) {
	s := newTestService()
	state, _ := s.Create(context.Background())
	ctx := context.Background()

	state, err := s.ShowPopup(ctx, state.ID, "r1")
	if err != nil {
		t.Fatalf("ShowPopup: %v", err)
	}
	if state.PopupLocationID != "r1" {
		t.Fatalf("popup = %q; want r1", state.PopupLocationID)
	}

	state, _ = s.Zoom(ctx, state.ID, "reset")
	if state.PopupLocationID != "" {
		t.Errorf("popup after reset = %q; want cleared", state.PopupLocationID)
	}
	if state.MapZoom != DefaultZoom {
		t.Errorf("zoom after reset = %v; want %v", state.MapZoom, DefaultZoom)
	}
}

func TestShowPopupUnknownLocation(t *testing.T) {
	s := newTestService()
	state, _ := s.Create(context.Background())

	if _, err := s.ShowPopup(context.Background(), state.ID, "ghost"); err == nil {
		t.Fatal("ShowPopup(ghost) succeeded; want error")
	}
}

func TestUpdateSettingsClampsVolume(t *testing.T) {
	s := newTestService()
	state, _ := s.Create(context.Background())

	vol := 2.5
	state, err := s.UpdateSettings(context.Background(), state.ID, UpdateSettingsRequest{VoiceVolume: &vol})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if state.VoiceVolume != 1 {
		t.Errorf("volume = %v; want clamped to 1", state.VoiceVolume)
	}

	enabled := false
	state, _ = s.UpdateSettings(context.Background(), state.ID, UpdateSettingsRequest{VoiceEnabled: &enabled})
	if state.VoiceEnabled {
		t.Error("voice still enabled after disable")
	}
}

func TestGetUnknownSession(t *testing.T) {
	s := newTestService()

	if _, err := s.Get(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("Get(nope) error = %v; want ErrNotFound", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	v := &venue.Venue{
		Name:            "Test Hall",
		CurrentLocation: venue.Location{ID: "entrance", Name: "Entrance"},
	}
	repo := NewMemoryRepository(10 * time.Millisecond)
	s := NewService(repo, venue.NewService(v))

	state, _ := s.Create(context.Background())
	time.Sleep(20 * time.Millisecond)

	if _, err := s.Get(context.Background(), state.ID); err != ErrNotFound {
		t.Fatalf("Get after expiry error = %v; want ErrNotFound", err)
	}
}
