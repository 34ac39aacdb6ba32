package assistant

import (
	"fmt"
	"strings"

	"wayfinder/internal/venue"
	"wayfinder/pkg/geo"
)

const defaultResponseText = "I'm here to help you navigate the venue. " +
	"You can ask me about locations, directions, or venue information. " +
	"Try asking about bathrooms, food, stages, parking, or emergency exits."

// DefaultRule names the catch-all branch in query events and logs.
const DefaultRule = "default"

// rule is one branch of the keyword cascade. respond may return nil, meaning
// the rule matched but the venue has nothing to answer with; resolution then
// continues with the remaining rules.
type rule struct {
	name     string
	keywords []string
	respond  func(v *venue.Venue, from geo.Point) *Response
}

func (r rule) matches(lowerQuery string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(lowerQuery, kw) {
			return true
		}
	}
	return false
}

// rules is the resolution table. Order is significant: a query mentioning
// both restrooms and food gets the restroom answer because restroom comes
// first. Do not reorder.
var rules = []rule{
	{name: "restroom", keywords: []string{"bathroom", "restroom", "toilet"}, respond: respondRestroom},
	{name: "food", keywords: []string{"food", "eat", "restaurant"}, respond: respondFood},
	{name: "stage", keywords: []string{"stage", "presentation", "event"}, respond: respondStage},
	{name: "parking", keywords: []string{"parking"}, respond: respondParking},
	{name: "exit", keywords: []string{"exit", "emergency"}, respond: respondExit},
	{name: "charging", keywords: []string{"charge", "phone"}, respond: respondCharging},
	{name: "info", keywords: []string{"info", "help"}, respond: respondInfo},
	{name: "hours", keywords: []string{"time", "hours", "close"}, respond: respondHours},
	{name: "wifi", keywords: []string{"wifi", "internet"}, respond: respondWifi},
}

// Resolve maps a free-text query to a response using the first matching rule,
// evaluated against the venue snapshot and the visitor's position. It is pure:
// no randomness, no clock, no I/O, so the same inputs always yield the same
// response. The second return value names the rule that produced the answer.
func Resolve(query string, v *venue.Venue, from geo.Point) (Response, string) {
	lower := strings.ToLower(query)

	for _, r := range rules {
		if !r.matches(lower) {
			continue
		}
		if resp := r.respond(v, from); resp != nil {
			return *resp, r.name
		}
		// Matched but nothing to answer with; later rules still get a shot.
	}

	return Response{Text: defaultResponseText}, DefaultRule
}

func respondRestroom(v *venue.Venue, from geo.Point) *Response {
	restrooms := v.LocationsByType(venue.LocationTypeRestroom)
	if len(restrooms) == 0 {
		return nil
	}

	points := make([]geo.Point, len(restrooms))
	for i, loc := range restrooms {
		points[i] = loc.Coordinates
	}
	idx, _ := geo.Nearest(points, from)
	nearest := restrooms[idx]

	return &Response{
		Text:   fmt.Sprintf("The nearest restroom is %s. %s", nearest.Name, nearest.Description),
		Action: &Action{Type: ActionHighlightLocation, LocationID: nearest.ID},
	}
}

func respondFood(v *venue.Venue, _ geo.Point) *Response {
	foods := v.LocationsByType(venue.LocationTypeFood)

	return &Response{
		Text: fmt.Sprintf("I found %d food options: %s. The main food court is centrally located.",
			len(foods), joinNames(foods, ", ")),
		Action: &Action{Type: ActionHighlightLocations, LocationIDs: locationIDs(foods)},
	}
}

func respondStage(v *venue.Venue, _ geo.Point) *Response {
	stages := v.LocationsByType(venue.LocationTypeStage)
	if len(stages) == 0 {
		return nil
	}

	// Prefer the stage whose name mentions "Main"; otherwise the first one.
	main := stages[0]
	for _, s := range stages {
		if strings.Contains(s.Name, "Main") {
			main = s
			break
		}
	}

	return &Response{
		Text:   fmt.Sprintf("The main stage is located at %s. %s", main.Name, main.Description),
		Action: &Action{Type: ActionHighlightLocation, LocationID: main.ID},
	}
}

func respondParking(v *venue.Venue, _ geo.Point) *Response {
	parking := v.LocationsByType(venue.LocationTypeParking)

	return &Response{
		Text: fmt.Sprintf("Parking is available in two areas: %s. Both are easily accessible from the main entrance.",
			joinNames(parking, " and ")),
		Action: &Action{Type: ActionHighlightLocations, LocationIDs: locationIDs(parking)},
	}
}

func respondExit(v *venue.Venue, _ geo.Point) *Response {
	exits := v.LocationsByType(venue.LocationTypeExit)

	return &Response{
		Text: fmt.Sprintf("Emergency exits are located at %s. In case of emergency, proceed to the nearest exit.",
			joinNames(exits, " and ")),
		Action: &Action{Type: ActionHighlightLocations, LocationIDs: locationIDs(exits)},
	}
}

func respondCharging(v *venue.Venue, _ geo.Point) *Response {
	for _, loc := range v.LocationsByType(venue.LocationTypeService) {
		if strings.Contains(loc.Name, "Charging") {
			return &Response{
				Text:   fmt.Sprintf("Phone charging stations are available at %s. %s", loc.Name, loc.Description),
				Action: &Action{Type: ActionHighlightLocation, LocationID: loc.ID},
			}
		}
	}
	return nil
}

func respondInfo(v *venue.Venue, _ geo.Point) *Response {
	desks := v.LocationsByType(venue.LocationTypeInfo)
	if len(desks) == 0 {
		return nil
	}
	desk := desks[0]

	return &Response{
		Text:   fmt.Sprintf("The information desk is located at %s. %s", desk.Name, desk.Description),
		Action: &Action{Type: ActionHighlightLocation, LocationID: desk.ID},
	}
}

func respondHours(v *venue.Venue, _ geo.Point) *Response {
	return &Response{
		Text: fmt.Sprintf("The venue is open %s. %s", v.Info.Hours, v.Info.Emergency),
	}
}

func respondWifi(v *venue.Venue, _ geo.Point) *Response {
	return &Response{Text: v.Info.Wifi}
}

func joinNames(locs []venue.Location, sep string) string {
	names := make([]string, len(locs))
	for i, loc := range locs {
		names[i] = loc.Name
	}
	return strings.Join(names, sep)
}

func locationIDs(locs []venue.Location) []string {
	ids := make([]string, len(locs))
	for i, loc := range locs {
		ids[i] = loc.ID
	}
	return ids
}
