package speech

import (
	"github.com/gin-gonic/gin"
)

func SetupSpeechRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Any method so the handler itself can answer 405 per the proxy contract.
	rg.Any("/text-to-speech", controller.TextToSpeech)
}
