package redisauth_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session/provider/redisauth"
)

// unreachableClient returns a client whose every command fails with a
// connection error. Port 1 is never listening locally.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
}

func TestRestore(t *testing.T) {
	t.Run("backend failure still pushes one anonymous event", func(t *testing.T) {
		p := redisauth.New(unreachableClient(), &mockLogger{}, time.Hour)

		var events []*model.Identity
		unsubscribe := p.SubscribeAuthState(func(identity *model.Identity) {
			events = append(events, identity)
		})
		defer unsubscribe()

		if err := p.Restore(context.Background()); err == nil {
			t.Fatal("expected an error from an unreachable backend")
		}
		if len(events) != 1 {
			t.Fatalf("auth-state events = %d, want 1", len(events))
		}
		if events[0] != nil {
			t.Fatalf("event identity = %+v, want nil", events[0])
		}
	})

	t.Run("gate leaves unknown after failed restore", func(t *testing.T) {
		p := redisauth.New(unreachableClient(), &mockLogger{}, time.Hour)

		gate := session.NewGate(&mockLogger{}, p)
		gate.Start()
		defer gate.Stop()

		if err := p.Restore(context.Background()); err == nil {
			t.Fatal("expected an error from an unreachable backend")
		}

		state, identity := gate.State()
		if state != session.StateAnonymous {
			t.Fatalf("state = %s, want %s", state, session.StateAnonymous)
		}
		if identity != nil {
			t.Fatalf("identity = %+v, want nil", identity)
		}
	})
}
