package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/middleware"
	sessionHTTP "github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session/delivery/http"
)

// setupSessionDomain registers the auth endpoints.
func (srv HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := sessionHTTP.New(srv.l, srv.authProvider, srv.gate)
	sessionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
