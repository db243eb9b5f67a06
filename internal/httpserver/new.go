package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/middleware"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/router"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session"
	sessionHTTP "github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session/delivery/http"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/sync"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/youtube"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Content domain
	editor   content.Editor
	articles *sync.Syncer
	videos   *sync.Syncer
	resolver *youtube.CachedResolver

	// Session domain
	authProvider   sessionHTTP.AuthProvider
	tokenValidator middleware.TokenValidator
	gate           *session.Gate
	authRatePerMin int

	// View routing
	navigator *router.Navigator
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Content domain
	Editor   content.Editor
	Articles *sync.Syncer
	Videos   *sync.Syncer
	Resolver *youtube.CachedResolver

	// Session domain
	AuthProvider   sessionHTTP.AuthProvider
	TokenValidator middleware.TokenValidator
	Gate           *session.Gate
	AuthRatePerMin int

	// View routing
	Navigator *router.Navigator
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		editor:         cfg.Editor,
		articles:       cfg.Articles,
		videos:         cfg.Videos,
		resolver:       cfg.Resolver,
		authProvider:   cfg.AuthProvider,
		tokenValidator: cfg.TokenValidator,
		gate:           cfg.Gate,
		authRatePerMin: cfg.AuthRatePerMin,
		navigator:      cfg.Navigator,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.editor == nil {
		return errors.New("editor is required")
	}
	if srv.articles == nil || srv.videos == nil {
		return errors.New("collection syncers are required")
	}
	if srv.resolver == nil {
		return errors.New("resolver is required")
	}
	if srv.authProvider == nil {
		return errors.New("auth provider is required")
	}
	if srv.tokenValidator == nil {
		return errors.New("token validator is required")
	}
	if srv.gate == nil {
		return errors.New("session gate is required")
	}
	if srv.navigator == nil {
		return errors.New("navigator is required")
	}
	return nil
}
