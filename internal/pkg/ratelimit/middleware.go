package ratelimit

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/skincare/internal/pkg/response"
)

// Middleware limits requests per client IP
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}
		c.Next()
	}
}
