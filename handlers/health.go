package handlers

import (
	"net/http"

	"turfadmin/utils"

	"github.com/gin-gonic/gin"
)

// HealthReporter returns the latest dependency health snapshot.
type HealthReporter interface {
	Status() utils.HealthStatus
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	Monitor HealthReporter
}

func NewHealthHandler(monitor HealthReporter) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// Health handles GET /health. The process is reported up even when a
// dependency is down; the snapshot tells which.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Monitor.Status()
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm the turf admin API",
		"dependencies": status,
	})
}
