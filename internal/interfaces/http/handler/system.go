package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashobox/backoffice/internal/interfaces/http/dto"
)

// Pinger checks marketplace reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	marketplace Pinger
	version     string
	startTime   time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(marketplace Pinger, version string) *SystemHandler {
	return &SystemHandler{
		marketplace: marketplace,
		version:     version,
		startTime:   time.Now(),
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/ping", h.Ping)
		system.GET("/info", h.GetSystemInfo)
		system.GET("/health", h.Health)
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      "Ashobox Back Office API",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping checks that the API itself is responsive
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HealthResponse reports the API and marketplace connection status
type HealthResponse struct {
	Status      string `json:"status"`
	Marketplace string `json:"marketplace"`
}

// Health checks the marketplace connection. A degraded answer keeps a 200
// status so load balancers keep routing read traffic; the body carries the
// marketplace state.
func (h *SystemHandler) Health(c *gin.Context) {
	health := HealthResponse{Status: "ok", Marketplace: "ok"}
	if err := h.marketplace.Ping(c.Request.Context()); err != nil {
		health.Status = "degraded"
		health.Marketplace = "unreachable"
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(health))
}
