package forward

import (
	"net/http"
	"testing"
)

func TestProxyHeaders_SetsForwardingMetadata(t *testing.T) {
	src := make(http.Header)
	dst := ProxyHeaders(src, "10.1.2.3:54321", false)

	if got := dst.Get("X-Real-IP"); got != "10.1.2.3" {
		t.Errorf("X-Real-IP = %q, want %q", got, "10.1.2.3")
	}
	if got := dst.Get("X-Forwarded-For"); got != "10.1.2.3" {
		t.Errorf("X-Forwarded-For = %q, want %q", got, "10.1.2.3")
	}
	if got := dst.Get("X-Forwarded-Proto"); got != "http" {
		t.Errorf("X-Forwarded-Proto = %q, want %q", got, "http")
	}
}

func TestProxyHeaders_AppendsForwardedFor(t *testing.T) {
	src := make(http.Header)
	src.Set("X-Forwarded-For", "203.0.113.7")
	dst := ProxyHeaders(src, "10.1.2.3:54321", false)

	want := "203.0.113.7, 10.1.2.3"
	if got := dst.Get("X-Forwarded-For"); got != want {
		t.Errorf("X-Forwarded-For = %q, want %q", got, want)
	}
}

func TestProxyHeaders_OverwritesClientSuppliedIdentity(t *testing.T) {
	src := make(http.Header)
	src.Set("X-Real-IP", "6.6.6.6")
	src.Set("X-Forwarded-Proto", "https")
	dst := ProxyHeaders(src, "10.1.2.3:54321", false)

	if got := dst.Get("X-Real-IP"); got != "10.1.2.3" {
		t.Errorf("X-Real-IP = %q, want overwrite to %q", got, "10.1.2.3")
	}
	if got := dst.Get("X-Forwarded-Proto"); got != "http" {
		t.Errorf("X-Forwarded-Proto = %q, want overwrite to %q", got, "http")
	}
}

func TestProxyHeaders_TLS(t *testing.T) {
	dst := ProxyHeaders(make(http.Header), "10.1.2.3:443", true)
	if got := dst.Get("X-Forwarded-Proto"); got != "https" {
		t.Errorf("X-Forwarded-Proto = %q, want %q", got, "https")
	}
}

func TestProxyHeaders_StripsHopByHop(t *testing.T) {
	src := make(http.Header)
	src.Set("Connection", "close, X-Custom-Hop")
	src.Set("X-Custom-Hop", "value")
	src.Set("Keep-Alive", "timeout=5")
	src.Set("Transfer-Encoding", "chunked")
	src.Set("Accept", "audio/mpeg")

	dst := ProxyHeaders(src, "10.1.2.3:54321", false)

	for _, name := range []string{"Connection", "Keep-Alive", "Transfer-Encoding", "X-Custom-Hop"} {
		if got := dst.Get(name); got != "" {
			t.Errorf("%s = %q, want stripped", name, got)
		}
	}
	if got := dst.Get("Accept"); got != "audio/mpeg" {
		t.Errorf("Accept = %q, want preserved", got)
	}
}

func TestProxyHeaders_DoesNotMutateSource(t *testing.T) {
	src := make(http.Header)
	src.Set("Connection", "keep-alive")
	ProxyHeaders(src, "10.1.2.3:54321", false)

	if got := src.Get("Connection"); got != "keep-alive" {
		t.Errorf("source Connection = %q, want untouched", got)
	}
}

func TestPeerIP_NoPort(t *testing.T) {
	dst := ProxyHeaders(make(http.Header), "10.1.2.3", false)
	if got := dst.Get("X-Real-IP"); got != "10.1.2.3" {
		t.Errorf("X-Real-IP = %q, want %q", got, "10.1.2.3")
	}
}
