package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashobox/backoffice/internal/application/moderation"
	"github.com/ashobox/backoffice/internal/domain/catalog"
	"github.com/ashobox/backoffice/internal/interfaces/http/dto"
	"github.com/ashobox/backoffice/internal/interfaces/http/middleware"
)

// ProductHandler serves the moderation queue and moderation actions
type ProductHandler struct {
	BaseHandler
	service *moderation.Service
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *moderation.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers product moderation routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.ListQueue)
		products.PATCH("/:id/status", h.UpdateStatus)
		products.PUT("/:id/tags", h.ReplaceTags)
	}
}

// ListQueueRequest represents the moderation queue query parameters
type ListQueueRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// ListQueue returns the product set with search and category filters applied,
// plus the pending count across the whole set.
func (h *ProductHandler) ListQueue(c *gin.Context) {
	var req ListQueueRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	queue, err := h.service.ListQueue(c.Request.Context(), req.Search, req.Category)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, queue, int64(len(queue.Products)))
}

// UpdateStatusRequest represents a moderation decision. A rejection must
// carry a reason; approvals and returns to the pending state may omit it.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Approved Rejected"`
	Reason string `json:"reason" binding:"required_if=Status Rejected,max=500"`
}

// UpdateStatus applies a moderation decision to a product.
func (h *ProductHandler) UpdateStatus(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.service.SetStatus(c.Request.Context(), uri.ID, catalog.ProductStatus(req.Status), req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ReplaceTagsRequest represents a wholesale tag replacement. Tags come from
// the curated inspiration vocabulary; an empty list clears the product.
type ReplaceTagsRequest struct {
	Tags []string `json:"tags" binding:"max=10,dive,inspotag"`
}

// ReplaceTags replaces a product's tag set.
func (h *ProductHandler) ReplaceTags(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	var req ReplaceTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.service.ReplaceTags(c.Request.Context(), uri.ID, req.Tags)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}
