package assistant

import (
	"errors"
	"net/http"

	"wayfinder/internal/session"
	"wayfinder/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Query(ctx *gin.Context) {
	var req QueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	result, err := c.service.Query(ctx.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrNotFound) {
			status = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", status, "Failed to resolve query", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Query resolved successfully", result, nil)
}
