package venue

import (
	"context"
	"fmt"
)

type Service interface {
	Venue(ctx context.Context) *Venue
	CurrentLocation(ctx context.Context) Location
	Locations(ctx context.Context) []Location
	LocationsByType(ctx context.Context, t LocationType) []Location
	LocationByID(ctx context.Context, id string) (*Location, error)
	DirectionsTo(ctx context.Context, id string) (*Location, string, error)
}

type service struct {
	venue *Venue
}

// NewService wraps an immutable venue snapshot. All reads are served from
// memory; the snapshot never changes after load.
func NewService(v *Venue) Service {
	return &service{venue: v}
}

func (s *service) Venue(ctx context.Context) *Venue {
	return s.venue
}

func (s *service) CurrentLocation(ctx context.Context) Location {
	return s.venue.CurrentLocation
}

func (s *service) Locations(ctx context.Context) []Location {
	return s.venue.Locations
}

func (s *service) LocationsByType(ctx context.Context, t LocationType) []Location {
	return s.venue.LocationsByType(t)
}

func (s *service) LocationByID(ctx context.Context, id string) (*Location, error) {
	loc := s.venue.LocationByID(id)
	if loc == nil {
		return nil, fmt.Errorf("location not found")
	}
	return loc, nil
}

// DirectionsTo returns the destination and its precomputed directions, or a
// synthesized coordinate hint when the fixture carries no path entry.
func (s *service) DirectionsTo(ctx context.Context, id string) (*Location, string, error) {
	loc, err := s.LocationByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if path := s.venue.PathTo(id); path != nil {
		return loc, path.Directions, nil
	}

	return loc, fmt.Sprintf("Head towards %s. It's located at coordinates (%g, %g).",
		loc.Name, loc.Coordinates.X, loc.Coordinates.Y), nil
}
