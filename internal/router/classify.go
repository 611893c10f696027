// Package router classifies request paths into handling strategies.
package router

import (
	"strings"

	"podcast-edge-go/internal/model"
)

const (
	mediaPrefix  = "/audio/"
	staticPrefix = "/static"
)

// Classify maps a request path to a RouteDecision. Classification is total:
// media and static prefixes are checked in priority order, and everything
// else falls through to the backend proxy, mirroring a catch-all root rule.
func Classify(path string) model.RouteDecision {
	switch {
	case strings.HasPrefix(path, mediaPrefix):
		return model.RouteDecision{
			Kind:    model.RouteMedia,
			Subpath: strings.TrimPrefix(path, mediaPrefix),
		}
	case strings.HasPrefix(path, staticPrefix):
		return model.RouteDecision{
			Kind:    model.RouteStatic,
			Subpath: strings.TrimPrefix(path, staticPrefix),
		}
	default:
		return model.RouteDecision{Kind: model.RouteProxy}
	}
}
