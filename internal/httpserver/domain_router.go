package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	routerHTTP "github.com/VJCTHEGREA8/the-fourth-wall-app/internal/router/delivery/http"
)

// setupViewRouting registers the view resolution endpoints.
func (srv HTTPServer) setupViewRouting(ctx context.Context, api *gin.RouterGroup) error {
	h := routerHTTP.New(srv.l, srv.navigator)
	routerHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "View routing registered")
	return nil
}
