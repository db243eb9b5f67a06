package redisauth

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

// implProvider is a Redis-backed identity provider: email+password accounts
// with bcrypt hashes, bearer session tokens with TTL, and a persisted
// current-session pointer so the admin session survives restarts.
//
// Layout:
//   - auth:user:{email}      JSON account record
//   - auth:session:{token}   JSON identity, expiring
//   - auth:current           token of the active admin session
type implProvider struct {
	client     *redis.Client
	l          log.Logger
	sessionTTL time.Duration

	mu      sync.Mutex
	token   string
	nextSub int
	subs    map[int]func(*model.Identity)
}

var _ session.Provider = (*implProvider)(nil)

// New creates a Redis-backed session.Provider.
func New(client *redis.Client, l log.Logger, sessionTTL time.Duration) *implProvider {
	if client == nil {
		panic("session/provider/redisauth: client is required")
	}
	return &implProvider{
		client:     client,
		l:          l,
		sessionTTL: sessionTTL,
		subs:       map[int]func(*model.Identity){},
	}
}

// SubscribeAuthState registers a callback for auth-state events. Nil
// identity means signed out.
func (p *implProvider) SubscribeAuthState(fn func(*model.Identity)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

func (p *implProvider) notify(identity *model.Identity) {
	p.mu.Lock()
	subs := make([]func(*model.Identity), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}

func userKey(email string) string {
	return fmt.Sprintf("auth:user:%s", strings.ToLower(strings.TrimSpace(email)))
}

func sessionKey(token string) string {
	return fmt.Sprintf("auth:session:%s", token)
}

const currentSessionKey = "auth:current"
