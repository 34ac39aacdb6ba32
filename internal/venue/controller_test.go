package venue

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewController(NewService(testVenue()))
	engine := gin.New()
	SetupVenueRoutes(engine.Group("/api/v1"), controller)
	return engine
}

func TestGetDirectionsResponse(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venue/locations/r1/directions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Data DirectionsResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.LocationID != "r1" || body.Data.Name != "Restroom A" {
		t.Errorf("data = %+v; want r1/Restroom A", body.Data)
	}
	if body.Data.Directions != "turn left at the lobby" {
		t.Errorf("directions = %q; want fixture path text", body.Data.Directions)
	}
}

func TestGetDirectionsUnknownLocation(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venue/locations/ghost/directions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404 (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestGetLocationsFilter(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venue/locations?type=restroom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Data LocationListResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.Count != 2 {
		t.Errorf("count = %d; want 2 restrooms", body.Data.Count)
	}
}
