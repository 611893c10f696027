package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"

	"podcast-edge-go/internal/config"
	"podcast-edge-go/internal/metrics"
	"podcast-edge-go/internal/model"
)

// MediaHandler streams audio files from the media root with byte-range
// support, so players can seek and resume without downloading whole files.
type MediaHandler struct {
	root    string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// MediaEntry is one row of a directory listing.
type MediaEntry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Dir  bool   `json:"dir,omitempty"`
}

// NewMediaHandler creates a MediaHandler. The metrics parameter is optional;
// pass nil to disable range-outcome recording.
func NewMediaHandler(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *MediaHandler {
	return &MediaHandler{
		root:    cfg.Media.Root,
		logger:  logger.With("component", "media_handler"),
		metrics: m,
	}
}

// Serve resolves subpath under the media root and serves either a directory
// listing or the file, honoring a single-range Range header.
func (h *MediaHandler) Serve(c echo.Context, subpath string) error {
	req := c.Request()
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return echo.NewHTTPError(http.StatusMethodNotAllowed)
	}

	full, err := resolveUnder(h.root, subpath)
	if err != nil {
		h.logger.Warn("media path rejected", "path", req.URL.Path)
		return echo.NewHTTPError(http.StatusNotFound)
	}

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		h.logger.Error("media stat failed", "err", err, "path", req.URL.Path)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	if info.IsDir() {
		return h.serveListing(c, full)
	}
	return h.serveFile(c, full, info.Size())
}

// serveListing emits the directory entries as JSON rows of name and size.
func (h *MediaHandler) serveListing(c echo.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		h.logger.Error("media listing failed", "err", err, "dir", dir)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	listing := make([]MediaEntry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		entry := MediaEntry{Name: e.Name(), Dir: e.IsDir()}
		if !e.IsDir() {
			entry.Size = info.Size()
		}
		listing = append(listing, entry)
	}

	return c.JSON(http.StatusOK, listing)
}

func (h *MediaHandler) serveFile(c echo.Context, full string, size int64) error {
	req := c.Request()
	res := c.Response()

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		h.logger.Error("media open failed", "err", err, "path", req.URL.Path)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	defer func() { _ = f.Close() }()

	res.Header().Set("Accept-Ranges", "bytes")
	contentType := model.MediaType(full)

	rng, err := model.ParseByteRange(req.Header.Get("Range"), size)
	switch {
	case errors.Is(err, model.ErrRangeUnsatisfiable):
		h.recordRange("unsatisfiable")
		res.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		res.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		return nil
	case errors.Is(err, model.ErrRangeMalformed):
		// Malformed syntax degrades to serving the whole file.
		rng = nil
	}

	if rng == nil {
		h.recordRange("full")
		res.Header().Set("Content-Type", contentType)
		res.Header().Set("Content-Length", strconv.FormatInt(size, 10))
		res.WriteHeader(http.StatusOK)
		if req.Method == http.MethodHead {
			return nil
		}
		if _, err := io.Copy(res, f); err != nil {
			h.logger.Error("streaming media file", "err", err, "path", req.URL.Path)
		}
		return nil
	}

	h.recordRange("partial")
	res.Header().Set("Content-Type", contentType)
	res.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", rng.Start, rng.End, size))
	res.Header().Set("Content-Length", strconv.FormatInt(rng.Length(), 10))
	res.WriteHeader(http.StatusPartialContent)
	if req.Method == http.MethodHead {
		return nil
	}
	section := io.NewSectionReader(f, rng.Start, rng.Length())
	if _, err := io.Copy(res, section); err != nil {
		h.logger.Error("streaming media range", "err", err, "path", req.URL.Path)
	}
	return nil
}

func (h *MediaHandler) recordRange(outcome string) {
	if h.metrics != nil {
		h.metrics.RangeRequests.WithLabelValues(outcome).Inc()
	}
}
