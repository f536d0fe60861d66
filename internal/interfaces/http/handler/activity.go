package handler

import (
	"github.com/gin-gonic/gin"

	activityapp "github.com/ashobox/backoffice/internal/application/activity"
	"github.com/ashobox/backoffice/internal/interfaces/http/dto"
	"github.com/ashobox/backoffice/internal/interfaces/http/middleware"
)

// ActivityHandler serves the marketplace audit trail
type ActivityHandler struct {
	BaseHandler
	service *activityapp.Service
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(service *activityapp.Service) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// RegisterRoutes registers activity log routes
func (h *ActivityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/activity-logs", h.List)
}

// List returns audit entries matching the search term.
func (h *ActivityHandler) List(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	logs, err := h.service.List(c.Request.Context(), req.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, logs, int64(len(logs)))
}
