package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles the liveness endpoint.
type HealthHandler struct {
	started       time.Time
	apiConfigured bool
}

// NewHealthHandler creates a HealthHandler. apiConfigured reports whether an
// upstream credential is present, never its value.
func NewHealthHandler(started time.Time, apiConfigured bool) *HealthHandler {
	return &HealthHandler{started: started, apiConfigured: apiConfigured}
}

// Health handles GET /health. Always 200; no auth.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"uptime":        time.Since(h.started).Round(time.Second).String(),
		"apiConfigured": h.apiConfigured,
	})
}
