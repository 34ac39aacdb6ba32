package session

import (
	"context"
	"fmt"
	"time"

	"wayfinder/internal/venue"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context) (*State, error)
	Get(ctx context.Context, id string) (*State, error)
	UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (*State, error)
	Zoom(ctx context.Context, id string, direction string) (*State, error)
	ShowPopup(ctx context.Context, id string, locationID string) (*State, error)
	DismissPopup(ctx context.Context, id string) (*State, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	venues venue.Service
}

func NewService(repo Repository, venues venue.Service) Service {
	return &service{repo: repo, venues: venues}
}

func (s *service) Create(ctx context.Context) (*State, error) {
	now := time.Now()
	state := &State{
		ID:                uuid.New().String(),
		CurrentLocationID: s.venues.CurrentLocation(ctx).ID,
		MapZoom:           DefaultZoom,
		VoiceEnabled:      true,
		VoiceVolume:       DefaultVolume,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return state, nil
}

func (s *service) Get(ctx context.Context, id string) (*State, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (*State, error) {
	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.VoiceEnabled != nil {
		state.VoiceEnabled = *req.VoiceEnabled
	}

	if req.VoiceVolume != nil {
		state.VoiceVolume = clamp(*req.VoiceVolume, 0, 1)
	}

	if req.CurrentLocationID != nil {
		if _, err := s.venues.LocationByID(ctx, *req.CurrentLocationID); err != nil {
			return nil, fmt.Errorf("unknown location %q", *req.CurrentLocationID)
		}
		state.CurrentLocationID = *req.CurrentLocationID
	}

	state.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

func (s *service) Zoom(ctx context.Context, id string, direction string) (*State, error) {
	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch direction {
	case "in":
		state.ZoomIn()
	case "out":
		state.ZoomOut()
	case "reset":
		state.ResetView()
	default:
		return nil, fmt.Errorf("invalid zoom direction %q", direction)
	}

	state.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

func (s *service) ShowPopup(ctx context.Context, id string, locationID string) (*State, error) {
	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.venues.LocationByID(ctx, locationID); err != nil {
		return nil, fmt.Errorf("unknown location %q", locationID)
	}

	state.PopupLocationID = locationID
	state.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

func (s *service) DismissPopup(ctx context.Context, id string) (*State, error) {
	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	state.PopupLocationID = ""
	state.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
