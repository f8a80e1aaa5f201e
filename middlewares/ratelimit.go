package middlewares

import (
	"log"

	"scriptstudio/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit caps model-backed endpoints per client IP. It is a no-op when
// Redis is not configured.
func RateLimit() gin.HandlerFunc {
	config := ratelimit.DefaultConfig()

	return func(c *gin.Context) {
		allowed, err := ratelimit.AllowGeneration(c.ClientIP(), config)
		if err != nil {
			// Rate limiting is best effort; never block traffic on a
			// limiter outage.
			log.Printf("Rate limiter error for %s: %v", c.ClientIP(), err)
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(429, gin.H{"error": "Too many generation requests, try again shortly"})
			return
		}
		c.Next()
	}
}
