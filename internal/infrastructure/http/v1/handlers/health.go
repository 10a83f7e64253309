// Package handlers provides the HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrimonio/internal/infrastructure/storage/postgres"
)

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	pool *postgres.Pool
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(pool *postgres.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// Live reports that the process is running.
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the service can take traffic, which means the
// database answers a ping.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := map[string]string{"database": "healthy"}
	status := http.StatusOK
	state := "ok"

	if err := h.pool.Ping(c.Request.Context()); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		status = http.StatusServiceUnavailable
		state = "error"
	}

	c.JSON(status, gin.H{"status": state, "checks": checks})
}

// Info returns the application name, version and pool usage.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	stat := h.pool.Stat()

	c.JSON(http.StatusOK, gin.H{
		"app":     "patrimonio",
		"version": "0.1.0",
		"database": map[string]any{
			"total_conns":    stat.TotalConns(),
			"acquired_conns": stat.AcquiredConns(),
			"idle_conns":     stat.IdleConns(),
			"max_conns":      stat.MaxConns(),
		},
	})
}
