package session

import (
	"github.com/gin-gonic/gin"
)

func SetupSessionRoutes(rg *gin.RouterGroup, controller *Controller) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", controller.Create)                   // POST /api/v1/sessions
		sessions.GET("/:id", controller.Get)                   // GET /api/v1/sessions/:id
		sessions.PATCH("/:id", controller.UpdateSettings)      // PATCH /api/v1/sessions/:id
		sessions.POST("/:id/zoom", controller.Zoom)            // POST /api/v1/sessions/:id/zoom
		sessions.POST("/:id/popup", controller.ShowPopup)      // POST /api/v1/sessions/:id/popup
		sessions.DELETE("/:id/popup", controller.DismissPopup) // DELETE /api/v1/sessions/:id/popup
		sessions.DELETE("/:id", controller.Delete)             // DELETE /api/v1/sessions/:id
	}
}
