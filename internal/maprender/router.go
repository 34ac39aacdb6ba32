package maprender

import (
	"github.com/gin-gonic/gin"
)

func SetupMapRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/map.svg", controller.GetMap) // GET /api/v1/map.svg?session_id=&highlight=
}
