package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"blogapp/pkg/core/repository"
)

type HealthCheckHandler struct {
	backend string
	repos   repository.Repositories
}

func NewHealthCheckHandler(backend string, repos repository.Repositories) *HealthCheckHandler {
	return &HealthCheckHandler{backend: backend, repos: repos}
}

type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components []ComponentStatus `json:"components,omitempty"`
}

type ComponentStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Check handles GET /health. The storage component is probed with a real
// read against the configured backend.
func (h *HealthCheckHandler) Check(ctx context.Context, c *app.RequestContext) {
	storage := ComponentStatus{Name: "storage:" + h.backend, Status: "ok"}
	if _, err := h.repos.Users.GetMany(); err != nil {
		storage.Status = "critical"
		storage.Error = err.Error()
	}

	status := HealthStatus{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Components: []ComponentStatus{storage},
	}

	if storage.Status != "ok" {
		status.Status = "degraded"
		c.JSON(503, status)
		return
	}
	c.JSON(200, status)
}
