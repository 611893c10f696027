// Package model defines shared types for the gateway.
package model

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// ProxyRequest represents a client request to be forwarded to the backend.
type ProxyRequest struct {
	Ctx    context.Context
	Method string
	Path   string
	// RawPath preserves the original percent-encoding of Path, so encoded
	// separators survive the round trip to the backend.
	RawPath    string
	Query      url.Values
	Header     http.Header
	Body       io.ReadCloser
	Host       string
	RemoteAddr string
	TLS        bool
}

// ProxyResponse represents the backend response to be streamed back.
type ProxyResponse struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}
