package venue

type LocationListResponse struct {
	Count     int        `json:"count"`
	Locations []Location `json:"locations"`
}

type DirectionsResponse struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Directions string `json:"directions"`
}
