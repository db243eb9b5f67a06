package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/middleware"
)

// Run wires every route and serves until the listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP server mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.tokenValidator, srv.authRatePerMin)

	if err := srv.setupContentDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupSessionDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupViewRouting(ctx, api); err != nil {
		return err
	}

	return nil
}
