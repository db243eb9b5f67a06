package session

import (
	"sync"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

// Gate tracks the current authenticated identity as reported by the
// provider. It starts Unknown and leaves that state exactly once, on the
// first provider event.
type Gate struct {
	provider Provider
	l        log.Logger

	mu          sync.Mutex
	state       State
	identity    *model.Identity
	unsubscribe func()
	nextSub     int
	subs        map[int]func(State, *model.Identity)
}

// NewGate creates a Gate in StateUnknown. Call Start to begin tracking.
func NewGate(l log.Logger, provider Provider) *Gate {
	return &Gate{
		provider: provider,
		l:        l,
		state:    StateUnknown,
		subs:     map[int]func(State, *model.Identity){},
	}
}

// Start subscribes to the provider's auth-state events.
func (g *Gate) Start() {
	g.mu.Lock()
	already := g.unsubscribe != nil
	g.mu.Unlock()
	if already {
		return
	}

	unsubscribe := g.provider.SubscribeAuthState(g.apply)
	g.mu.Lock()
	g.unsubscribe = unsubscribe
	g.mu.Unlock()
}

// Stop detaches from the provider. Idempotent.
func (g *Gate) Stop() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// State returns the current state and, when authenticated, a copy of the
// identity.
func (g *Gate) State() (State, *model.Identity) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.identity == nil {
		return g.state, nil
	}
	id := *g.identity
	return g.state, &id
}

// Subscribe registers an observer for state transitions. The returned func
// unregisters it.
func (g *Gate) Subscribe(fn func(State, *model.Identity)) func() {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

func (g *Gate) apply(identity *model.Identity) {
	g.mu.Lock()
	if identity == nil {
		g.state = StateAnonymous
		g.identity = nil
	} else {
		id := *identity
		g.state = StateAuthenticated
		g.identity = &id
	}
	state := g.state

	subs := make([]func(State, *model.Identity), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	for _, fn := range subs {
		// Each subscriber gets its own copy, like State() hands out.
		var id *model.Identity
		if identity != nil {
			c := *identity
			id = &c
		}
		fn(state, id)
	}
}
