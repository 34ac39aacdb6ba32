package assistant

import (
	"github.com/gin-gonic/gin"
)

func SetupAssistantRoutes(rg *gin.RouterGroup, controller *Controller) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/query", controller.Query) // POST /api/v1/assistant/query
	}
}
