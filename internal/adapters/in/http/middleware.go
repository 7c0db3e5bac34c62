package http

import (
	"log/slog"
	"net/http"

	"amenade/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per client IP using the injected
// limiter. When the limiter itself fails, the request is allowed through:
// a degraded Redis must not take the write path down with it.
func RateLimitMiddleware(limiter ports.RateLimiter, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			allowed, err := limiter.Allow(ctx.Request().Context(), ctx.RealIP())
			if err != nil {
				logger.Warn("rate limiter unavailable", "error", err)
				return next(ctx)
			}
			if !allowed {
				return ctx.JSON(http.StatusTooManyRequests, Error{
					Code:    http.StatusTooManyRequests,
					Message: "Too many requests",
				})
			}
			return next(ctx)
		}
	}
}
