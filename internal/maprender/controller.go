package maprender

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

func (c *Controller) GetMap(ctx *gin.Context) {
	svg, err := c.service.RenderMap(ctx.Request.Context(),
		ctx.Query("session_id"), ctx.Query("highlight"))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, session.ErrNotFound) {
			status = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", status, "Failed to render map", nil, err.Error())
		return
	}

	ctx.Data(http.StatusOK, "image/svg+xml", svg)
}
