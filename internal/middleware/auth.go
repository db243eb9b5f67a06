package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/response"
)

// IdentityKey is the gin context key carrying the authenticated identity.
const IdentityKey = "identity"

// Auth enforces Bearer session-token authentication.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
		identity, err := mw.validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}
