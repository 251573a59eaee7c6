package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"petpal/internal/infrastructure/ratelimit"
	"petpal/pkg/errors"
	"petpal/pkg/logger"
	"petpal/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit throttles the named action per authenticated account. Requests
// without an account fall back to the client IP as the bucket key.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = c.RealIP()
			}

			allowed, retryAfter := m.limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit hit for %s on %s", key, action)
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many requests, retry in %ds", int(retryAfter.Seconds())+1)))
			}

			return next(c)
		}
	}
}
