package venue

import (
	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	venue := rg.Group("/venue")
	{
		venue.GET("", controller.GetVenue)                                // GET /api/v1/venue
		venue.GET("/locations", controller.GetLocations)                  // GET /api/v1/venue/locations?type=
		venue.GET("/locations/:id", controller.GetLocation)               // GET /api/v1/venue/locations/:id
		venue.GET("/locations/:id/directions", controller.GetDirections) // GET /api/v1/venue/locations/:id/directions
	}
}
