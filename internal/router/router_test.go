package router_test

import (
	"context"
	"testing"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/router"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockProvider hands the auth-state callback back to the test.
type mockProvider struct {
	push func(*model.Identity)
}

func (m *mockProvider) SubscribeAuthState(fn func(*model.Identity)) func() {
	m.push = fn
	return func() {}
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (model.Identity, error) {
	return model.Identity{}, nil
}

func (m *mockProvider) SignUp(ctx context.Context, email, password string) (model.Identity, error) {
	return model.Identity{}, nil
}

func (m *mockProvider) SignOut(ctx context.Context) error { return nil }

func TestRoute(t *testing.T) {
	cases := []struct {
		name  string
		page  router.Page
		state session.State
		want  router.ViewMode
	}{
		{"Unknown Always Loads", router.PageAdmin, session.StateUnknown, router.ModeLoading},
		{"Unknown On Home", router.PageHome, session.StateUnknown, router.ModeLoading},
		{"Admin Authenticated", router.PageAdmin, session.StateAuthenticated, router.ModeAdminPanel},
		{"Admin Anonymous", router.PageAdmin, session.StateAnonymous, router.ModeAuthScreen},
		{"Auth Page Anonymous", router.PageAuth, session.StateAnonymous, router.ModeAuthScreen},
		{"Auth Page Authenticated", router.PageAuth, session.StateAuthenticated, router.ModeAuthScreen},
		{"Home Anonymous", router.PageHome, session.StateAnonymous, router.ModePublicSite},
		{"Unknown Page Falls Back To Public", router.Page("nonsense"), session.StateAuthenticated, router.ModePublicSite},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := router.Route(tc.page, tc.state); got != tc.want {
				t.Errorf("Route(%s, %s) = %s, want %s", tc.page, tc.state, got, tc.want)
			}
		})
	}
}

func TestNavigatorRedirects(t *testing.T) {
	setup := func(t *testing.T) (*mockProvider, *session.Gate, *router.Navigator) {
		t.Helper()
		p := &mockProvider{}
		gate := session.NewGate(&mockLogger{}, p)
		gate.Start()
		nav := router.NewNavigator(&mockLogger{}, gate)
		nav.Start()
		return p, gate, nav
	}

	t.Run("Authenticated Forces Admin", func(t *testing.T) {
		p, _, nav := setup(t)
		nav.Goto(router.PageAuth)

		p.push(&model.Identity{UID: "u1"})

		if got := nav.Current(); got != router.PageAdmin {
			t.Errorf("expected admin page after sign-in, got %s", got)
		}
		if got := nav.Mode(); got != router.ModeAdminPanel {
			t.Errorf("expected admin panel mode, got %s", got)
		}
	})

	t.Run("Sign Out On Admin Forces Home", func(t *testing.T) {
		p, _, nav := setup(t)

		p.push(&model.Identity{UID: "u1"})
		p.push(nil)

		if got := nav.Current(); got != router.PageHome {
			t.Errorf("expected home after sign-out on admin, got %s", got)
		}
		if got := nav.Mode(); got != router.ModePublicSite {
			t.Errorf("expected public mode, got %s", got)
		}
	})

	t.Run("Sign Out Elsewhere Keeps Page", func(t *testing.T) {
		p, _, nav := setup(t)
		p.push(nil)
		nav.Goto(router.PageAuth)

		p.push(nil)

		if got := nav.Current(); got != router.PageAuth {
			t.Errorf("expected auth page kept, got %s", got)
		}
	})

	t.Run("Mode Is Loading Before First Event", func(t *testing.T) {
		_, _, nav := setup(t)
		if got := nav.Mode(); got != router.ModeLoading {
			t.Errorf("expected loading, got %s", got)
		}
	})

	t.Run("Stopped Navigator Ignores Transitions", func(t *testing.T) {
		p, _, nav := setup(t)
		p.push(nil)
		nav.Stop()

		p.push(&model.Identity{UID: "u1"})

		if got := nav.Current(); got != router.PageHome {
			t.Errorf("expected home after stop, got %s", got)
		}
	})
}
