package http

import (
	"context"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

// AuthProvider is the slice of the identity provider this layer needs.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (model.Identity, error)
	SignUp(ctx context.Context, email, password string) (model.Identity, error)
	SignOut(ctx context.Context) error
	Token() string
}

type handler struct {
	l        log.Logger
	provider AuthProvider
	gate     *session.Gate
}

// New creates the auth HTTP handler.
func New(l log.Logger, provider AuthProvider, gate *session.Gate) *handler {
	return &handler{
		l:        l,
		provider: provider,
		gate:     gate,
	}
}
