package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omaroid/user-service/internal/domain/repository"
)

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Version   string `json:"version"`
	Error     string `json:"error,omitempty"`
}

type HealthHandler struct {
	Health  repository.HealthService
	Version string
}

func NewHealthHandler(health repository.HealthService, version string) *HealthHandler {
	return &HealthHandler{Health: health, Version: version}
}

// Check handles GET /health. 200 when the store answers, 503 otherwise.
// The health body is not enveloped; monitors read it directly.
func (h *HealthHandler) Check(c *gin.Context) {
	healthy := h.Health.CheckHealth(c.Request.Context())

	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
		Version:   h.Version,
	}
	code := http.StatusOK
	if !healthy {
		status.Status = "unhealthy"
		status.Database = "disconnected"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
