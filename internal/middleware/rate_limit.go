package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects requests above the configured per-minute budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.planLimiter != nil && !m.planLimiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rejected %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
