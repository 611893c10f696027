package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"podcast-edge-go/internal/config"
	"podcast-edge-go/internal/service"
	"podcast-edge-go/internal/upstream"
)

func newTestHealthHandler(t *testing.T) *HealthHandler {
	t.Helper()
	cfg := &config.Config{
		Upstream: config.UpstreamConfig{TimeoutSeconds: 10, IdleConnections: 10},
		Static:   config.StaticConfig{Root: "/srv/static"},
		Media:    config.MediaConfig{Root: "/srv/media"},
	}
	logger := discardLogger()
	pool, err := upstream.NewPool([]string{"app:3000"})
	if err != nil {
		t.Fatal(err)
	}
	f := service.NewForwarder(upstream.NewClient(cfg, logger, nil), pool, logger)
	return NewHealthHandler(cfg, f, Version("1.2.3"))
}

func TestHealthz(t *testing.T) {
	h := newTestHealthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Healthz(c); err != nil {
		t.Fatalf("Healthz() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestStatus(t *testing.T) {
	h := newTestHealthHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/gateway/status", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Status(c); err != nil {
		t.Fatalf("Status() error = %v", err)
	}

	var body struct {
		Status     string   `json:"status"`
		Version    string   `json:"version"`
		Backends   []string `json:"backends"`
		StaticRoot string   `json:"static_root"`
		MediaRoot  string   `json:"media_root"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Version != "1.2.3" {
		t.Errorf("version = %q, want %q", body.Version, "1.2.3")
	}
	if len(body.Backends) != 1 || body.Backends[0] != "http://app:3000" {
		t.Errorf("backends = %v", body.Backends)
	}
	if body.StaticRoot != "/srv/static" || body.MediaRoot != "/srv/media" {
		t.Errorf("roots = %q, %q", body.StaticRoot, body.MediaRoot)
	}
}
