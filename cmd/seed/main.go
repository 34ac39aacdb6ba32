// Command seed regenerates the sample venue fixture. Run it after changing
// the built-in layout so data/venue-data.json and the code stay in sync:
//
//	go run ./cmd/seed -out data/venue-data.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"wayfinder/internal/venue"
	"wayfinder/pkg/geo"
)

type fixture struct {
	Venue *venue.Venue `json:"venue"`
}

func main() {
	out := flag.String("out", "data/venue-data.json", "output path for the venue fixture")
	flag.Parse()

	fmt.Println("🌱 Seeding venue fixture...")

	v := sampleVenue()

	data, err := json.MarshalIndent(fixture{Venue: v}, "", "  ")
	if err != nil {
		log.Fatalf("marshal fixture: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	fmt.Printf("✅ Wrote %s (%d locations, %d paths)\n", *out, len(v.Locations), len(v.Paths))
}

func sampleVenue() *venue.Venue {
	return &venue.Venue{
		Name: "Sample Convention Center",
		CurrentLocation: venue.Location{
			ID:          "entrance_main",
			Name:        "Main Entrance",
			Type:        venue.LocationTypeInfo,
			Description: "You are here",
			Coordinates: geo.Point{X: 100, Y: 400},
		},
		Locations: []venue.Location{
			{
				ID: "restroom_west", Name: "West Restrooms", Type: venue.LocationTypeRestroom,
				Description: "Restrooms near the west wing, wheelchair accessible.",
				Coordinates: geo.Point{X: 150, Y: 200}, Icon: "fas fa-restroom",
			},
			{
				ID: "restroom_east", Name: "East Restrooms", Type: venue.LocationTypeRestroom,
				Description: "Restrooms next to the east escalators.",
				Coordinates: geo.Point{X: 620, Y: 240}, Icon: "fas fa-restroom",
			},
			{
				ID: "food_court", Name: "Central Food Court", Type: venue.LocationTypeFood,
				Description: "Twelve vendors, open all day.",
				Coordinates: geo.Point{X: 400, Y: 300}, Icon: "fas fa-utensils",
			},
			{
				ID: "cafe_north", Name: "North Cafe", Type: venue.LocationTypeFood,
				Description: "Coffee and light snacks.",
				Coordinates: geo.Point{X: 380, Y: 110}, Icon: "fas fa-coffee",
			},
			{
				ID: "stage_main", Name: "Main Stage", Type: venue.LocationTypeStage,
				Description: "Keynotes and headline presentations run here.",
				Coordinates: geo.Point{X: 500, Y: 80}, Icon: "fas fa-microphone",
			},
			{
				ID: "stage_workshop", Name: "Workshop Stage", Type: venue.LocationTypeStage,
				Description: "Smaller talks and hands-on sessions.",
				Coordinates: geo.Point{X: 220, Y: 90}, Icon: "fas fa-chalkboard-teacher",
			},
			{
				ID: "parking_north", Name: "North Parking Garage", Type: venue.LocationTypeParking,
				Description: "Covered parking, levels 1-4.",
				Coordinates: geo.Point{X: 80, Y: 60}, Icon: "fas fa-parking",
			},
			{
				ID: "parking_south", Name: "South Parking Lot", Type: venue.LocationTypeParking,
				Description: "Open-air lot by the south entrance.",
				Coordinates: geo.Point{X: 600, Y: 460}, Icon: "fas fa-parking",
			},
			{
				ID: "exit_east", Name: "East Exit", Type: venue.LocationTypeExit,
				Description: "Emergency exit to Convention Plaza.",
				Coordinates: geo.Point{X: 700, Y: 300}, Icon: "fas fa-door-open",
			},
			{
				ID: "exit_west", Name: "West Exit", Type: venue.LocationTypeExit,
				Description: "Emergency exit to the transit station.",
				Coordinates: geo.Point{X: 40, Y: 280}, Icon: "fas fa-door-open",
			},
			{
				ID: "charging_hub", Name: "Charging Station Hub", Type: venue.LocationTypeService,
				Description: "Free phone charging lockers, 30 minute slots.",
				Coordinates: geo.Point{X: 320, Y: 360}, Icon: "fas fa-charging-station",
			},
			{
				ID: "info_desk", Name: "Information Desk", Type: venue.LocationTypeInfo,
				Description: "Staffed desk by the main entrance.",
				Coordinates: geo.Point{X: 140, Y: 420}, Icon: "fas fa-info-circle",
			},
		},
		Paths: []venue.Path{
			{
				To:         "restroom_west",
				Directions: "Walk straight past the information desk, then take the first corridor on your left. The restrooms are 50 meters ahead on your right.",
			},
			{
				To:         "food_court",
				Directions: "Head toward the center of the hall. The food court surrounds the central atrium.",
			},
			{
				To:         "stage_main",
				Directions: "Follow the overhead signs toward Hall B. The main stage is through the double doors at the end.",
			},
			{
				To:         "charging_hub",
				Directions: "The charging hub is between the food court and the south corridor, next to the seating area.",
			},
		},
		Info: venue.Info{
			Hours:     "from 8:00 AM to 10:00 PM daily",
			Emergency: "In case of emergency, dial 911 or contact venue security at extension 0.",
			Wifi:      "Free WiFi is available throughout the venue. Network: ConventionWiFi, Password: welcome2024",
		},
	}
}
