// Package service implements the reverse-proxy forwarding logic.
package service

import (
	"fmt"
	"log/slog"
	"net/url"

	"podcast-edge-go/internal/forward"
	"podcast-edge-go/internal/model"
	"podcast-edge-go/internal/upstream"
)

// Forwarder relays client requests to the backend pool.
type Forwarder struct {
	client *upstream.Client
	pool   *upstream.Pool
	logger *slog.Logger
}

// NewForwarder creates a Forwarder.
func NewForwarder(c *upstream.Client, p *upstream.Pool, logger *slog.Logger) *Forwarder {
	return &Forwarder{
		client: c,
		pool:   p,
		logger: logger.With("component", "forwarder"),
	}
}

// Forward sends a ProxyRequest to the next backend in the pool and returns
// the response. The caller is responsible for closing the response body.
//
// The outbound request carries the original Host header plus forwarding
// metadata (X-Real-IP, X-Forwarded-For, X-Forwarded-Proto); hop-by-hop
// headers are stripped in both directions. The request body is streamed, not
// buffered, and the request context cancels the upstream call when the
// client disconnects.
func (f *Forwarder) Forward(pr *model.ProxyRequest) (*model.ProxyResponse, error) {
	target := f.pool.Next()
	upstreamURL := buildUpstreamURL(target, pr)
	header := forward.ProxyHeaders(pr.Header, pr.RemoteAddr, pr.TLS)

	f.logger.Debug("forwarding request",
		"method", pr.Method,
		"path", pr.Path,
		"backend", target.Host,
	)

	resp, err := f.client.DoStream(pr.Ctx, pr.Method, upstreamURL, pr.Host, header, pr.Body)
	if err != nil {
		return nil, fmt.Errorf("forward to %s: %w", target.Host, err)
	}

	forward.StripHopByHop(resp.Header)
	return resp, nil
}

// Backends returns the configured backend addresses for status reporting.
func (f *Forwarder) Backends() []string {
	return f.pool.Targets()
}

// buildUpstreamURL joins the request path and query onto a backend target.
// RawPath is carried so percent-encoded separators reach the backend intact.
func buildUpstreamURL(target *url.URL, pr *model.ProxyRequest) string {
	u := *target
	u.Path = pr.Path
	u.RawPath = pr.RawPath
	u.RawQuery = pr.Query.Encode()
	return u.String()
}
