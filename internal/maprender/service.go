package maprender

import (
	"bytes"
	"context"
	"fmt"

	"wayfinder/internal/session"
	"wayfinder/internal/venue"
	"wayfinder/pkg/geo"
)

type Service interface {
	// RenderMap draws the venue map. A session id scopes the frame to that
	// visitor: their current position, their open popup. A highlight id adds
	// a highlight ring and a guide overlay toward that location.
	RenderMap(ctx context.Context, sessionID, highlightID string) ([]byte, error)
}

type service struct {
	venues   venue.Service
	sessions session.Service
}

func NewService(venues venue.Service, sessions session.Service) Service {
	return &service{venues: venues, sessions: sessions}
}

func (s *service) RenderMap(ctx context.Context, sessionID, highlightID string) ([]byte, error) {
	v := s.venues.Venue(ctx)
	current := v.CurrentLocation

	var popup *venue.Location
	if sessionID != "" {
		sess, err := s.sessions.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if loc := v.LocationByID(sess.CurrentLocationID); loc != nil {
			current = *loc
		}
		if sess.PopupLocationID != "" {
			popup = v.LocationByID(sess.PopupLocationID)
		}
	}

	surface := NewSVGSurface()
	surface.RenderMarkers(current, v.Locations)

	if highlightID != "" {
		target := v.LocationByID(highlightID)
		if target == nil {
			return nil, fmt.Errorf("unknown location %q", highlightID)
		}
		surface.Highlight(target.ID)
		surface.DrawOverlay(geo.ComputeOverlay(current.Coordinates, target.Coordinates))
	}

	if popup != nil {
		surface.ShowPopup(*popup)
	}

	var buf bytes.Buffer
	if err := surface.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
