package speech

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Controller exposes the text-to-speech proxy. Unlike the rest of the API it
// answers with the raw proxy contract (audio bytes or {"error": ...}) rather
// than the standard envelope, so browser audio elements can consume it
// directly.
type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) TextToSpeech(ctx *gin.Context) {
	// Only allow POST requests
	if ctx.Request.Method != http.MethodPost {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req TextToSpeechRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	audio, err := c.service.TextToSpeech(ctx.Request.Context(), req.Text, req.VoiceID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate speech"})
		return
	}

	ctx.Data(http.StatusOK, "audio/mpeg", audio)
}
