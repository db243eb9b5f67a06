package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the view routing endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	view := rg.Group("/view")
	{
		view.GET("", h.View)
		view.POST("/navigate", h.Navigate)
	}
}
