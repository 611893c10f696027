// Package forward derives the header set sent to the backend on proxied
// requests: forwarding metadata is injected and hop-by-hop headers owned by
// this connection segment are stripped.
package forward

import (
	"net"
	"net/http"
	"strings"
)

// hopByHopHeaders must not be forwarded across connection segments.
var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Proxy-Connection",
	"TE",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// ProxyHeaders builds the outbound header set for a request to the backend.
//
// X-Real-IP and X-Forwarded-Proto are overwritten with this hop's view of the
// connection; X-Forwarded-For keeps chain semantics, appending the peer to
// any client-supplied value. The Host header is carried on the outbound
// request itself, not here.
func ProxyHeaders(src http.Header, remoteAddr string, tls bool) http.Header {
	dst := src.Clone()
	StripHopByHop(dst)

	peer := peerIP(remoteAddr)
	dst.Set("X-Real-IP", peer)

	if prior := dst.Get("X-Forwarded-For"); prior != "" {
		dst.Set("X-Forwarded-For", prior+", "+peer)
	} else {
		dst.Set("X-Forwarded-For", peer)
	}

	if tls {
		dst.Set("X-Forwarded-Proto", "https")
	} else {
		dst.Set("X-Forwarded-Proto", "http")
	}

	return dst
}

// StripHopByHop removes hop-by-hop headers, including any additional headers
// named by the Connection header.
func StripHopByHop(h http.Header) {
	if connection := h.Get("Connection"); connection != "" {
		for _, token := range strings.Split(connection, ",") {
			h.Del(strings.TrimSpace(token))
		}
	}
	for _, name := range hopByHopHeaders {
		h.Del(name)
	}
}

// peerIP extracts the host part of a remote address, tolerating addresses
// without a port.
func peerIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
