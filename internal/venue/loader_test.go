package venue

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venue.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const minimalFixture = `{
  "venue": {
    "name": "Test Hall",
    "current_location": {"id": "entrance", "name": "Entrance", "coordinates": {"x": 10, "y": 20}},
    "locations": [
      {"id": "r1", "name": "Restroom A", "type": "restroom", "description": "near entrance", "coordinates": {"x": 0, "y": 0}},
      {"id": "f1", "name": "Cafe", "type": "food", "description": "coffee", "coordinates": {"x": 5, "y": 5}}
    ],
    "paths": [{"to": "r1", "directions": "turn left"}],
    "venue_info": {"hours": "9-5", "emergency": "call 911", "wifi": "open network"}
  }
}`

func TestLoad(t *testing.T) {
	path := writeFixture(t, minimalFixture)

	v, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if v.Name != "Test Hall" {
		t.Errorf("name = %q; want %q", v.Name, "Test Hall")
	}
	if len(v.Locations) != 2 {
		t.Errorf("locations = %d; want 2", len(v.Locations))
	}
	if v.CurrentLocation.Coordinates.X != 10 {
		t.Errorf("current location x = %v; want 10", v.CurrentLocation.Coordinates.X)
	}
	if v.Info.Wifi != "open network" {
		t.Errorf("wifi = %q; want %q", v.Info.Wifi, "open network")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", `{{{`},
		{"missing name", `{"venue": {"current_location": {"id": "e", "name": "E", "coordinates": {"x": 0, "y": 0}}}}`},
		{"duplicate ids", `{"venue": {"name": "V", "current_location": {"id": "e", "name": "E", "coordinates": {"x": 0, "y": 0}},
			"locations": [
				{"id": "a", "name": "A", "type": "food", "coordinates": {"x": 1, "y": 1}},
				{"id": "a", "name": "B", "type": "food", "coordinates": {"x": 2, "y": 2}}
			]}}`},
		{"negative coordinates", `{"venue": {"name": "V", "current_location": {"id": "e", "name": "E", "coordinates": {"x": 0, "y": 0}},
			"locations": [{"id": "a", "name": "A", "type": "food", "coordinates": {"x": -1, "y": 1}}]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, tc.content)
			if _, err := Load(path); err == nil {
				t.Fatal("Load succeeded; want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Load succeeded on missing file; want error")
	}
}

func TestFallback(t *testing.T) {
	v := Fallback()

	if v.CurrentLocation.Name != "Main Entrance" {
		t.Errorf("fallback current location = %q; want %q", v.CurrentLocation.Name, "Main Entrance")
	}
	if len(v.Locations) != 0 {
		t.Errorf("fallback locations = %d; want 0", len(v.Locations))
	}
	if err := validate(v); err != nil {
		t.Errorf("fallback venue is invalid: %v", err)
	}
}
