package session_test

import (
	"context"
	"testing"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
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
	push             func(*model.Identity)
	unsubscribeCount int
}

func (m *mockProvider) SubscribeAuthState(fn func(*model.Identity)) func() {
	m.push = fn
	return func() { m.unsubscribeCount++ }
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (model.Identity, error) {
	return model.Identity{}, nil
}

func (m *mockProvider) SignUp(ctx context.Context, email, password string) (model.Identity, error) {
	return model.Identity{}, nil
}

func (m *mockProvider) SignOut(ctx context.Context) error { return nil }

func TestGate(t *testing.T) {
	t.Run("Starts Unknown", func(t *testing.T) {
		g := session.NewGate(&mockLogger{}, &mockProvider{})
		g.Start()

		state, identity := g.State()
		if state != session.StateUnknown || identity != nil {
			t.Errorf("expected unknown state before first event, got %s", state)
		}
	})

	t.Run("First Event Leaves Unknown", func(t *testing.T) {
		p := &mockProvider{}
		g := session.NewGate(&mockLogger{}, p)
		g.Start()

		p.push(nil)
		if state, _ := g.State(); state != session.StateAnonymous {
			t.Errorf("expected anonymous, got %s", state)
		}

		p.push(&model.Identity{UID: "u1", Email: "admin@fourthwall.io"})
		state, identity := g.State()
		if state != session.StateAuthenticated {
			t.Errorf("expected authenticated, got %s", state)
		}
		if identity == nil || identity.UID != "u1" {
			t.Errorf("expected identity u1, got %+v", identity)
		}
	})

	t.Run("Sign Out Returns To Anonymous", func(t *testing.T) {
		p := &mockProvider{}
		g := session.NewGate(&mockLogger{}, p)
		g.Start()

		p.push(&model.Identity{UID: "u1"})
		p.push(nil)

		state, identity := g.State()
		if state != session.StateAnonymous || identity != nil {
			t.Errorf("expected anonymous after sign-out, got %s %+v", state, identity)
		}
	})

	t.Run("Subscribers See Transitions", func(t *testing.T) {
		p := &mockProvider{}
		g := session.NewGate(&mockLogger{}, p)
		g.Start()

		var states []session.State
		unsubscribe := g.Subscribe(func(state session.State, _ *model.Identity) {
			states = append(states, state)
		})

		p.push(&model.Identity{UID: "u1"})
		p.push(nil)
		unsubscribe()
		p.push(&model.Identity{UID: "u1"})

		if len(states) != 2 || states[0] != session.StateAuthenticated || states[1] != session.StateAnonymous {
			t.Errorf("unexpected transitions: %v", states)
		}
	})

	t.Run("Stop Is Idempotent", func(t *testing.T) {
		p := &mockProvider{}
		g := session.NewGate(&mockLogger{}, p)
		g.Start()

		g.Stop()
		g.Stop()

		if p.unsubscribeCount != 1 {
			t.Errorf("expected one unsubscribe, got %d", p.unsubscribeCount)
		}
	})

	t.Run("Subscribers Get Identity Copies", func(t *testing.T) {
		p := &mockProvider{}
		g := session.NewGate(&mockLogger{}, p)
		g.Start()

		g.Subscribe(func(_ session.State, identity *model.Identity) {
			if identity != nil {
				identity.Email = "mutated"
			}
		})
		var seen string
		g.Subscribe(func(_ session.State, identity *model.Identity) {
			if identity != nil {
				seen = identity.Email
			}
		})

		pushed := model.Identity{UID: "u1", Email: "a@b.c"}
		p.push(&pushed)

		if seen != "a@b.c" {
			t.Errorf("second subscriber saw mutated identity: %q", seen)
		}
		if pushed.Email != "a@b.c" {
			t.Errorf("provider's identity was mutated: %q", pushed.Email)
		}
		if _, identity := g.State(); identity.Email != "a@b.c" {
			t.Errorf("gate identity was mutated: %q", identity.Email)
		}
	})

	t.Run("State Returns Identity Copy", func(t *testing.T) {
		p := &mockProvider{}
		g := session.NewGate(&mockLogger{}, p)
		g.Start()

		p.push(&model.Identity{UID: "u1", Email: "a@b.c"})
		_, identity := g.State()
		identity.Email = "mutated"

		_, again := g.State()
		if again.Email != "a@b.c" {
			t.Errorf("identity copy leaked back into the gate: %q", again.Email)
		}
	})
}
