package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"podcast-edge-go/internal/config"
	"podcast-edge-go/internal/metrics"
)

// RegisterRoutes wires all route handlers onto the Echo instance. The
// control endpoints are matched first; everything else falls through to the
// gateway dispatch.
func RegisterRoutes(e *echo.Echo, gw *Gateway, health *HealthHandler, m *metrics.Metrics, cfg *config.Config) {
	e.GET("/healthz", health.Healthz)
	e.GET("/gateway/status", health.Status)

	if cfg.Metrics.Enabled {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(
			promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}),
		))
	}

	e.Any("/*", gw.Dispatch)
}
