package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/ashobox/backoffice/internal/application/report"
	"github.com/ashobox/backoffice/internal/interfaces/http/dto"
	"github.com/ashobox/backoffice/internal/interfaces/http/middleware"
)

// ReportHandler serves the reporting views
type ReportHandler struct {
	BaseHandler
	service *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *reportapp.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/overview", h.GetOverview)
		reports.GET("/financial-summary", h.GetFinancialSummary)
	}
	rg.GET("/vendors", h.ListVendors)
}

// GetOverview returns the assembled report: monthly revenue, revenue by
// category, ledger distribution and the top vendor ranking.
func (h *ReportHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// GetFinancialSummary returns the fee and earnings summary cards.
func (h *ReportHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.service.FinancialSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// ListVendors returns vendor stats, optionally filtered by business name.
func (h *ReportHandler) ListVendors(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	vendors, err := h.service.Vendors(c.Request.Context(), req.Search)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, vendors, int64(len(vendors)))
}
