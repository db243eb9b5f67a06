package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/response"
)

// AuthRateLimit throttles credential endpoints. Sign-in/sign-up are the only
// unauthenticated write surface, so they get a shared token bucket.
func (mw Middleware) AuthRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.authLimiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
