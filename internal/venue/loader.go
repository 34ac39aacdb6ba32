package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"wayfinder/pkg/geo"
	"wayfinder/pkg/logger"
)

// Load reads and validates the venue fixture at path.
func Load(path string) (*Venue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read venue fixture: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse venue fixture: %w", err)
	}

	if err := validate(&doc.Venue); err != nil {
		return nil, fmt.Errorf("invalid venue fixture: %w", err)
	}

	return &doc.Venue, nil
}

// LoadOrFallback loads the fixture and, on any failure, substitutes the
// minimal fallback venue. Load failures are logged, never surfaced: the
// visitor just sees a degraded venue.
func LoadOrFallback(ctx context.Context, path string, log *logger.Logger) *Venue {
	v, err := Load(path)
	if err != nil {
		log.ErrorWithContext(ctx, "Venue fixture load failed, using fallback", err, map[string]interface{}{
			"path": path,
		})
		v = Fallback()
		log.LogVenueLoaded(ctx, v.Name, len(v.Locations), true)
		return v
	}

	log.LogVenueLoaded(ctx, v.Name, len(v.Locations), false)
	return v
}

// Fallback returns the hardcoded single-location venue used when the
// fixture cannot be loaded.
func Fallback() *Venue {
	return &Venue{
		Name: "Sample Convention Center",
		CurrentLocation: Location{
			ID:          "entrance_main",
			Name:        "Main Entrance",
			Coordinates: geo.Point{X: 100, Y: 400},
		},
		Locations: []Location{},
		Paths:     []Path{},
	}
}

func validate(v *Venue) error {
	if v.Name == "" {
		return fmt.Errorf("venue name is required")
	}

	seen := make(map[string]bool, len(v.Locations))
	for _, loc := range v.Locations {
		if loc.ID == "" {
			return fmt.Errorf("location %q has no id", loc.Name)
		}
		if seen[loc.ID] {
			return fmt.Errorf("duplicate location id %q", loc.ID)
		}
		seen[loc.ID] = true

		if loc.Coordinates.X < 0 || loc.Coordinates.Y < 0 {
			return fmt.Errorf("location %q has negative coordinates", loc.ID)
		}
	}

	if v.CurrentLocation.Coordinates.X < 0 || v.CurrentLocation.Coordinates.Y < 0 {
		return fmt.Errorf("current location has negative coordinates")
	}

	return nil
}
