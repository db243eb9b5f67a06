package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	contentHTTP "github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/delivery/http"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/middleware"
)

// setupContentDomain registers the public lists, the collection streams, and
// the admin editor routes.
func (srv HTTPServer) setupContentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := contentHTTP.New(srv.l, srv.editor, srv.articles, srv.videos, srv.resolver)
	contentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Content domain registered")
	return nil
}
