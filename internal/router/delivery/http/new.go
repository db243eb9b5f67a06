package http

import (
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/router"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

type handler struct {
	l   log.Logger
	nav *router.Navigator
}

// New creates the view routing HTTP handler.
func New(l log.Logger, nav *router.Navigator) *handler {
	return &handler{
		l:   l,
		nav: nav,
	}
}
