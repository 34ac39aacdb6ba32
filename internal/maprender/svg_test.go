package maprender

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"wayfinder/internal/session"
	"wayfinder/internal/venue"
	"wayfinder/pkg/geo"
)

func testVenue() *venue.Venue {
	return &venue.Venue{
		Name: "Test Hall",
		CurrentLocation: venue.Location{
			ID: "entrance", Name: "Entrance", Coordinates: geo.Point{X: 100, Y: 100},
		},
		Locations: []venue.Location{
			{ID: "r1", Name: "Restroom A", Type: venue.LocationTypeRestroom, Description: "Near the lobby.", Coordinates: geo.Point{X: 200, Y: 100}},
			{ID: "f1", Name: "Cafe & Grill", Type: venue.LocationTypeFood, Coordinates: geo.Point{X: 300, Y: 200}},
		},
	}
}

func TestSVGSurfaceMarkers(t *testing.T) {
	v := testVenue()

	surface := NewSVGSurface()
	surface.RenderMarkers(v.CurrentLocation, v.Locations)

	var buf bytes.Buffer
	if err := surface.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `data-location-id="r1"`) {
		t.Error("missing restroom marker")
	}
	if !strings.Contains(out, `data-location-id="f1"`) {
		t.Error("missing food marker")
	}
	// Marker labels are escaped.
	if !strings.Contains(out, "Cafe &amp; Grill") {
		t.Error("location name not escaped")
	}
	// Visitor marker at the current position.
	if !strings.Contains(out, `cx="100" cy="100" r="8"`) {
		t.Error("missing visitor marker")
	}
}

func TestSVGSurfaceOverlay(t *testing.T) {
	v := testVenue()

	surface := NewSVGSurface()
	surface.RenderMarkers(v.CurrentLocation, v.Locations)
	surface.Highlight("r1")
	surface.DrawOverlay(geo.ComputeOverlay(geo.Point{X: 100, Y: 100}, geo.Point{X: 200, Y: 100}))

	var buf bytes.Buffer
	if err := surface.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `x1="100" y1="100" x2="200" y2="100"`) {
		t.Error("missing guide line")
	}
	if !strings.Contains(out, `stroke-dasharray="5,5"`) {
		t.Error("guide line not dashed")
	}
	if !strings.Contains(out, "<polygon points=") {
		t.Error("missing arrowhead polygon")
	}
	// Highlight ring wraps the target marker.
	if !strings.Contains(out, `cx="200" cy="100" r="12"`) {
		t.Error("missing highlight ring")
	}
}

func TestRenderMapWithSession(t *testing.T) {
	venues := venue.NewService(testVenue())
	sessions := session.NewService(session.NewMemoryRepository(time.Hour), venues)
	svc := NewService(venues, sessions)

	state, err := sessions.Create(context.Background())
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}
	if _, err := sessions.ShowPopup(context.Background(), state.ID, "f1"); err != nil {
		t.Fatalf("ShowPopup: %v", err)
	}

	svg, err := svc.RenderMap(context.Background(), state.ID, "r1")
	if err != nil {
		t.Fatalf("RenderMap: %v", err)
	}
	out := string(svg)

	if !strings.Contains(out, "<polygon points=") {
		t.Error("highlight did not produce an overlay")
	}
	if !strings.Contains(out, "Cafe &amp; Grill") || !strings.Contains(out, "<rect") {
		t.Error("session popup not rendered")
	}
}

func TestRenderMapUnknownInputs(t *testing.T) {
	venues := venue.NewService(testVenue())
	sessions := session.NewService(session.NewMemoryRepository(time.Hour), venues)
	svc := NewService(venues, sessions)

	if _, err := svc.RenderMap(context.Background(), "", "ghost"); err == nil {
		t.Error("RenderMap with unknown highlight succeeded; want error")
	}
	if _, err := svc.RenderMap(context.Background(), "missing-session", ""); err == nil {
		t.Error("RenderMap with unknown session succeeded; want error")
	}
}
