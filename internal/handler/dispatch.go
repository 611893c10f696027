package handler

import (
	"github.com/labstack/echo/v4"

	"podcast-edge-go/internal/model"
	"podcast-edge-go/internal/router"
)

// Gateway is the single entry point behind the catch-all route. It classifies
// each request path and dispatches to exactly one handling strategy.
type Gateway struct {
	proxy  *ProxyHandler
	static *StaticHandler
	media  *MediaHandler
}

// NewGateway creates a Gateway.
func NewGateway(proxy *ProxyHandler, static *StaticHandler, media *MediaHandler) *Gateway {
	return &Gateway{proxy: proxy, static: static, media: media}
}

// Dispatch routes the request according to its path classification.
func (g *Gateway) Dispatch(c echo.Context) error {
	decision := router.Classify(c.Request().URL.Path)
	switch decision.Kind {
	case model.RouteMedia:
		return g.media.Serve(c, decision.Subpath)
	case model.RouteStatic:
		return g.static.Serve(c, decision.Subpath)
	default:
		return g.proxy.Handle(c)
	}
}
