package venue

import (
	"net/http"

	"wayfinder/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	v := c.service.Venue(ctx.Request.Context())
	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved successfully", v, nil)
}

func (c *Controller) GetLocations(ctx *gin.Context) {
	var filters LocationFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	var locations []Location
	if filters.Type != "" {
		locations = c.service.LocationsByType(ctx.Request.Context(), LocationType(filters.Type))
	} else {
		locations = c.service.Locations(ctx.Request.Context())
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Locations retrieved successfully", LocationListResponse{
		Count:     len(locations),
		Locations: locations,
	}, nil)
}

func (c *Controller) GetLocation(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Location ID is required", nil, "missing location ID")
		return
	}

	loc, err := c.service.LocationByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to get location", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Location retrieved successfully", loc, nil)
}

func (c *Controller) GetDirections(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Location ID is required", nil, "missing location ID")
		return
	}

	loc, directions, err := c.service.DirectionsTo(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to get directions", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Directions retrieved successfully", DirectionsResponse{
		LocationID: id,
		Name:       loc.Name,
		Directions: directions,
	}, nil)
}
