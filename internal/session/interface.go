package session

import (
	"context"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// Provider is the external identity provider. It pushes auth-state events
// asynchronously at any time: sign-in, sign-out, and session restoration on
// startup. A nil identity means signed out. Error messages are surfaced to
// the operator verbatim.
type Provider interface {
	// SubscribeAuthState registers a callback for auth-state events. The
	// returned func unsubscribes; calling it twice is a no-op.
	SubscribeAuthState(fn func(*model.Identity)) func()

	SignIn(ctx context.Context, email, password string) (model.Identity, error)
	SignUp(ctx context.Context, email, password string) (model.Identity, error)
	SignOut(ctx context.Context) error
}
