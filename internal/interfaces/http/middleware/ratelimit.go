package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"openfare/internal/infrastructure/ratelimit"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

// RateLimiter throttles requests per client IP on the routes it guards.
// A limiter failure (Redis down) lets the request through so an outage in
// the rate-limit store never takes down authentication.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := rl.limiter.Allow(key, rl.limit, rl.window)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request",
				"key", key,
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
