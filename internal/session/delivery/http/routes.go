package http

import (
	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Sign-in and sign-up share a rate
// limit to slow down credential guessing.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signin", mw.AuthRateLimit(), h.SignIn)
		auth.POST("/signup", mw.AuthRateLimit(), h.SignUp)
		auth.POST("/signout", h.SignOut)
		auth.GET("/session", h.Session)
	}
}
