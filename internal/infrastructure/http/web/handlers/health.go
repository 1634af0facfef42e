package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by /health/info.
const Version = "0.1.0"

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	customerAPIBaseURL string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(customerAPIBaseURL string) *HealthHandler {
	return &HealthHandler{customerAPIBaseURL: customerAPIBaseURL}
}

// RegisterRoutes mounts the probes on rg (expected: /health).
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Live)
	rg.GET("/info", h.Info)
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     "customerweb",
		"version": Version,
		"customer_api": map[string]any{
			"base_url": h.customerAPIBaseURL,
		},
	})
}
