package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

// TokenValidator resolves a bearer session token to its identity.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (model.Identity, error)
}

type Middleware struct {
	l           log.Logger
	validator   TokenValidator
	authLimiter *rate.Limiter
}

// New creates the middleware set. authRatePerMin caps credential attempts
// across the auth endpoints.
func New(l log.Logger, validator TokenValidator, authRatePerMin int) Middleware {
	if authRatePerMin <= 0 {
		authRatePerMin = 60
	}
	return Middleware{
		l:           l,
		validator:   validator,
		authLimiter: rate.NewLimiter(rate.Limit(authRatePerMin)/60, authRatePerMin),
	}
}
