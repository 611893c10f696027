package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"podcast-edge-go/internal/config"
)

// StaticHandler serves versioned assets from the static root.
type StaticHandler struct {
	root   string
	maxAge int
	logger *slog.Logger
}

// NewStaticHandler creates a StaticHandler.
func NewStaticHandler(cfg *config.Config, logger *slog.Logger) *StaticHandler {
	return &StaticHandler{
		root:   cfg.Static.Root,
		maxAge: cfg.Static.CacheMaxAgeSecond,
		logger: logger.With("component", "static_handler"),
	}
}

// Serve resolves subpath under the static root and serves the file with
// conditional-request support. Directories and traversal attempts answer
// 404; a 403 would leak existence information.
func (h *StaticHandler) Serve(c echo.Context, subpath string) error {
	req := c.Request()
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return echo.NewHTTPError(http.StatusMethodNotAllowed)
	}

	full, err := resolveUnder(h.root, subpath)
	if err != nil {
		h.logger.Warn("static path rejected", "path", req.URL.Path)
		return echo.NewHTTPError(http.StatusNotFound)
	}

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		h.logger.Error("static stat failed", "err", err, "path", req.URL.Path)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	if info.IsDir() {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		h.logger.Error("static open failed", "err", err, "path", req.URL.Path)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	defer func() { _ = f.Close() }()

	c.Response().Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.maxAge))

	// ServeContent handles Content-Type by extension, Last-Modified and
	// conditional requests.
	http.ServeContent(c.Response(), req, info.Name(), info.ModTime(), f)
	return nil
}
