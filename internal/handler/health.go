package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"podcast-edge-go/internal/config"
	"podcast-edge-go/internal/service"
)

// Version is a string type for dependency injection of the build version.
type Version string

// HealthHandler serves health and status endpoints.
type HealthHandler struct {
	cfg       *config.Config
	forwarder *service.Forwarder
	version   Version
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(cfg *config.Config, f *service.Forwarder, v Version) *HealthHandler {
	return &HealthHandler{cfg: cfg, forwarder: f, version: v}
}

// Healthz returns a simple OK response for liveness probes.
func (h *HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Status returns gateway status information.
func (h *HealthHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ok",
		"version":     string(h.version),
		"backends":    h.forwarder.Backends(),
		"static_root": h.cfg.Static.Root,
		"media_root":  h.cfg.Media.Root,
	})
}
