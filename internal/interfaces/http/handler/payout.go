package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	payoutapp "github.com/ashobox/backoffice/internal/application/payout"
	"github.com/ashobox/backoffice/internal/domain/finance"
	"github.com/ashobox/backoffice/internal/interfaces/http/dto"
	"github.com/ashobox/backoffice/internal/interfaces/http/middleware"
)

// PayoutHandler serves the payout ledger and records new disbursements
type PayoutHandler struct {
	BaseHandler
	service *payoutapp.Service
}

// NewPayoutHandler creates a new PayoutHandler
func NewPayoutHandler(service *payoutapp.Service) *PayoutHandler {
	return &PayoutHandler{service: service}
}

// RegisterRoutes registers payout routes
func (h *PayoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payouts := rg.Group("/payouts")
	{
		payouts.GET("", h.List)
		payouts.GET("/reference", h.NewReference)
		payouts.POST("", h.Record)
	}
}

// List returns payouts matching the search term with their summary.
func (h *PayoutHandler) List(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	view, err := h.service.List(c.Request.Context(), req.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, view, int64(view.Summary.Count))
}

// RecordPayoutRequest represents a new payout record. A blank reference is
// filled in server-side; a supplied one must match the reference format.
type RecordPayoutRequest struct {
	VendorID   int64           `json:"vendorId" binding:"required,min=1"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Reference  string          `json:"reference" binding:"omitempty,payoutref"`
	ReceiptURL string          `json:"receiptUrl" binding:"omitempty,url"`
	Notes      string          `json:"notes" binding:"max=500"`
}

// RecordPayoutResponse carries the reference the marketplace stored.
type RecordPayoutResponse struct {
	Reference string `json:"reference"`
}

// Record sends a payout record to the marketplace.
func (h *PayoutHandler) Record(c *gin.Context) {
	var req RecordPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	if !req.Amount.IsPositive() {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "amount", Message: "Must be greater than 0"},
		})
		return
	}

	reference, err := h.service.Record(c.Request.Context(), finance.PayoutRequest{
		VendorID:   req.VendorID,
		Amount:     req.Amount,
		Reference:  req.Reference,
		ReceiptURL: req.ReceiptURL,
		Notes:      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, RecordPayoutResponse{Reference: reference})
}

// NewReference hands out a fresh payout reference for the recording form.
func (h *PayoutHandler) NewReference(c *gin.Context) {
	h.Success(c, RecordPayoutResponse{Reference: h.service.NewReference()})
}
