package venue

import (
	"wayfinder/pkg/geo"
)

// LocationType classifies a point of interest on the venue map.
type LocationType string

const (
	LocationTypeRestroom LocationType = "restroom"
	LocationTypeFood     LocationType = "food"
	LocationTypeStage    LocationType = "stage"
	LocationTypeParking  LocationType = "parking"
	LocationTypeExit     LocationType = "exit"
	LocationTypeService  LocationType = "service"
	LocationTypeInfo     LocationType = "info"
)

// Location is a point of interest with venue-local pixel coordinates.
type Location struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        LocationType `json:"type"`
	Description string       `json:"description"`
	Coordinates geo.Point    `json:"coordinates"`
	Icon        string       `json:"icon,omitempty"`
}

// Path carries precomputed walking directions to one destination.
// At most one path per destination is consulted; first match wins.
type Path struct {
	To         string `json:"to"`
	Directions string `json:"directions"`
}

// Info holds the venue-wide free-text facts the assistant can quote.
type Info struct {
	Hours     string `json:"hours"`
	Emergency string `json:"emergency"`
	Wifi      string `json:"wifi"`
}

// Venue is the full static description of the navigable space. It is loaded
// once at startup and treated as immutable for the life of the process.
type Venue struct {
	Name            string     `json:"name"`
	CurrentLocation Location   `json:"current_location"`
	Locations       []Location `json:"locations"`
	Paths           []Path     `json:"paths"`
	Info            Info       `json:"venue_info"`
}

// document mirrors the fixture file's top-level wrapper object.
type document struct {
	Venue Venue `json:"venue"`
}

// LocationsByType returns all locations of the given type, in venue order.
func (v *Venue) LocationsByType(t LocationType) []Location {
	var out []Location
	for _, loc := range v.Locations {
		if loc.Type == t {
			out = append(out, loc)
		}
	}
	return out
}

// LocationByID returns the location with the given id, or nil.
func (v *Venue) LocationByID(id string) *Location {
	for i := range v.Locations {
		if v.Locations[i].ID == id {
			return &v.Locations[i]
		}
	}
	return nil
}

// PathTo returns the first path entry targeting the given location id, or nil.
func (v *Venue) PathTo(id string) *Path {
	for i := range v.Paths {
		if v.Paths[i].To == id {
			return &v.Paths[i]
		}
	}
	return nil
}
