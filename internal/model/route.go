package model

// RouteKind identifies the handling strategy for a request.
type RouteKind int

const (
	// RouteProxy forwards the request to the backend application.
	RouteProxy RouteKind = iota
	// RouteStatic serves a versioned asset from the static root.
	RouteStatic
	// RouteMedia serves an audio file from the media root with range support.
	RouteMedia
)

// String returns the route kind as a label suitable for logs and metrics.
func (k RouteKind) String() string {
	switch k {
	case RouteStatic:
		return "static"
	case RouteMedia:
		return "media"
	default:
		return "proxy"
	}
}

// RouteDecision is the outcome of classifying a request path.
// Exactly one kind applies per request; Subpath is only meaningful for
// RouteStatic and RouteMedia and is relative to the respective root.
type RouteDecision struct {
	Kind    RouteKind
	Subpath string
}
