package middleware

import (
	"github.com/labstack/echo/v4"

	"podcast-edge-go/internal/forward"
)

// SecurityHeaders returns an Echo middleware that strips hop-by-hop headers
// from inbound requests and adds security headers to responses.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			forward.StripHopByHop(c.Request().Header)

			// Registered as a before-write hook so the headers also land on
			// streamed responses that commit inside the handler.
			c.Response().Before(func() {
				c.Response().Header().Set("X-Content-Type-Options", "nosniff")
				c.Response().Header().Set("X-Frame-Options", "DENY")
			})

			return next(c)
		}
	}
}
