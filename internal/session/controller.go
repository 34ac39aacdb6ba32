package session

import (
	"errors"
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

func statusFor(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (c *Controller) Create(ctx *gin.Context) {
	state, err := c.service.Create(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create session", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Session created successfully", state, nil)
}

func (c *Controller) Get(ctx *gin.Context) {
	state, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get session", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session retrieved successfully", state, nil)
}

func (c *Controller) UpdateSettings(ctx *gin.Context) {
	var req UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	state, err := c.service.UpdateSettings(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update session", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session updated successfully", state, nil)
}

func (c *Controller) Zoom(ctx *gin.Context) {
	var req ZoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	state, err := c.service.Zoom(ctx.Request.Context(), ctx.Param("id"), req.Direction)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to zoom", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Zoom updated successfully", state, nil)
}

func (c *Controller) ShowPopup(ctx *gin.Context) {
	var req PopupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	state, err := c.service.ShowPopup(ctx.Request.Context(), ctx.Param("id"), req.LocationID)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to show popup", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Popup shown successfully", state, nil)
}

func (c *Controller) DismissPopup(ctx *gin.Context) {
	state, err := c.service.DismissPopup(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to dismiss popup", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Popup dismissed successfully", state, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete session", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session deleted successfully", nil, nil)
}
