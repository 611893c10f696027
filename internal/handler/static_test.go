package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"podcast-edge-go/internal/config"
)

func newStaticHandler(root string) *StaticHandler {
	cfg := &config.Config{Static: config.StaticConfig{Root: root, CacheMaxAgeSecond: 3600}}
	return NewStaticHandler(cfg, discardLogger())
}

func serveStatic(h *StaticHandler, subpath, method string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, "/static"+subpath, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.Serve(c, subpath)
}

func TestStatic_ServesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "dist"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dist", "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newStaticHandler(dir)

	rec, err := serveStatic(h, "/dist/app.js", http.MethodGet)
	if err != nil {
		t.Fatalf("Serve() error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "console.log(1)" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := rec.Header().Get("Last-Modified"); got == "" {
		t.Error("Last-Modified header missing")
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "javascript") {
		t.Errorf("Content-Type = %q, want javascript", got)
	}
}

func TestStatic_ConditionalRequest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newStaticHandler(dir)

	first, err := serveStatic(h, "/style.css", http.MethodGet)
	if err != nil {
		t.Fatalf("Serve() error = %v", err)
	}
	lastModified := first.Header().Get("Last-Modified")
	if lastModified == "" {
		t.Fatal("Last-Modified header missing")
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/static/style.css", http.NoBody)
	req.Header.Set("If-Modified-Since", lastModified)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Serve(c, "/style.css"); err != nil {
		t.Fatalf("Serve() error = %v", err)
	}

	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotModified)
	}
}

func TestStatic_MissingFile(t *testing.T) {
	h := newStaticHandler(t.TempDir())
	_, err := serveStatic(h, "/nope.js", http.MethodGet)
	if code := httpErrorCode(t, err); code != http.StatusNotFound {
		t.Errorf("code = %d, want %d", code, http.StatusNotFound)
	}
}

func TestStatic_DirectoryIsNotFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "dist"), 0o755); err != nil {
		t.Fatal(err)
	}
	h := newStaticHandler(dir)

	_, err := serveStatic(h, "/dist", http.MethodGet)
	if code := httpErrorCode(t, err); code != http.StatusNotFound {
		t.Errorf("code = %d, want %d", code, http.StatusNotFound)
	}
}

func TestStatic_TraversalRejected(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := filepath.Join(dir, "static")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatal(err)
	}
	h := newStaticHandler(root)

	for _, sub := range []string{"/../secret.txt", "/../../etc/passwd"} {
		rec, err := serveStatic(h, sub, http.MethodGet)
		if err == nil {
			t.Errorf("subpath %q: served with status %d, want 404 error", sub, rec.Code)
			continue
		}
		// 404, never 403: existence must not leak.
		if code := httpErrorCode(t, err); code != http.StatusNotFound {
			t.Errorf("subpath %q: code = %d, want %d", sub, code, http.StatusNotFound)
		}
	}
}

func TestStatic_MethodNotAllowed(t *testing.T) {
	h := newStaticHandler(t.TempDir())
	_, err := serveStatic(h, "/app.js", http.MethodDelete)
	if code := httpErrorCode(t, err); code != http.StatusMethodNotAllowed {
		t.Errorf("code = %d, want %d", code, http.StatusMethodNotAllowed)
	}
}
