package http

import (
	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The public
// site reads freely; every editor intent sits behind Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	public := rg.Group("/content")
	{
		public.GET("/articles", h.ListArticles)
		public.GET("/videos", h.ListVideos)
		public.GET("/stream/:collection", h.Stream)
	}

	editor := rg.Group("/admin/editor", mw.Auth())
	{
		editor.GET("", h.EditorState)
		editor.POST("/variant", h.SelectVariant)
		editor.POST("/field", h.UpdateField)
		editor.POST("/edit", h.BeginEdit)
		editor.POST("/cancel", h.CancelEdit)
		editor.POST("/submit", h.Submit)
		editor.POST("/delete", h.Remove)
	}
}
