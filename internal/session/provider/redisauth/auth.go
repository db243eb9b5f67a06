package redisauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// account is the stored user record.
type account struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// SignUp creates an account and signs it in immediately.
func (p *implProvider) SignUp(ctx context.Context, email, password string) (model.Identity, error) {
	if email == "" || password == "" {
		return model.Identity{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.l.Errorf(ctx, "redisauth.SignUp hash: %v", err)
		return model.Identity{}, err
	}

	acct := account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	data, err := json.Marshal(acct)
	if err != nil {
		return model.Identity{}, err
	}

	ok, err := p.client.SetNX(ctx, userKey(email), data, 0).Result()
	if err != nil {
		p.l.Errorf(ctx, "redisauth.SignUp setnx: %v", err)
		return model.Identity{}, err
	}
	if !ok {
		return model.Identity{}, ErrEmailTaken
	}

	return p.startSession(ctx, model.Identity{UID: acct.UID, Email: acct.Email})
}

// SignIn verifies credentials and opens a session.
func (p *implProvider) SignIn(ctx context.Context, email, password string) (model.Identity, error) {
	data, err := p.client.Get(ctx, userKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Identity{}, ErrInvalidCredentials
		}
		p.l.Errorf(ctx, "redisauth.SignIn get account: %v", err)
		return model.Identity{}, err
	}

	var acct account
	if err := json.Unmarshal([]byte(data), &acct); err != nil {
		return model.Identity{}, fmt.Errorf("corrupt account record: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return model.Identity{}, ErrInvalidCredentials
	}

	return p.startSession(ctx, model.Identity{UID: acct.UID, Email: acct.Email})
}

// SignOut closes the current session. Always pushes an Anonymous event, even
// when no session was open.
func (p *implProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	token := p.token
	p.token = ""
	p.mu.Unlock()

	if token != "" {
		pipe := p.client.Pipeline()
		pipe.Del(ctx, sessionKey(token))
		pipe.Del(ctx, currentSessionKey)
		if _, err := pipe.Exec(ctx); err != nil {
			p.l.Errorf(ctx, "redisauth.SignOut: %v", err)
			return err
		}
	}

	p.notify(nil)
	return nil
}

// Restore replays the persisted session on startup. It always pushes exactly
// one auth-state event, Authenticated when a live session exists, Anonymous
// otherwise, so the gate leaves Unknown.
func (p *implProvider) Restore(ctx context.Context) error {
	token, err := p.client.Get(ctx, currentSessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			p.notify(nil)
			return nil
		}
		p.l.Errorf(ctx, "redisauth.Restore get current: %v", err)
		// Degrade to Anonymous so consumers still leave their initial state.
		p.notify(nil)
		return err
	}

	identity, err := p.ValidateToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			p.client.Del(ctx, currentSessionKey)
			p.notify(nil)
			return nil
		}
		p.notify(nil)
		return err
	}

	p.mu.Lock()
	p.token = token
	p.mu.Unlock()

	p.notify(&identity)
	return nil
}

// ValidateToken resolves a bearer token to its identity.
func (p *implProvider) ValidateToken(ctx context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, ErrNoSession
	}

	data, err := p.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Identity{}, ErrNoSession
		}
		p.l.Errorf(ctx, "redisauth.ValidateToken: %v", err)
		return model.Identity{}, err
	}

	var identity model.Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return model.Identity{}, fmt.Errorf("corrupt session record: %w", err)
	}
	return identity, nil
}

// Token returns the current session's bearer token, "" when signed out.
func (p *implProvider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

func (p *implProvider) startSession(ctx context.Context, identity model.Identity) (model.Identity, error) {
	token := uuid.NewString()
	data, err := json.Marshal(identity)
	if err != nil {
		return model.Identity{}, err
	}

	pipe := p.client.Pipeline()
	pipe.Set(ctx, sessionKey(token), data, p.sessionTTL)
	pipe.Set(ctx, currentSessionKey, token, p.sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		p.l.Errorf(ctx, "redisauth.startSession: %v", err)
		return model.Identity{}, err
	}

	p.mu.Lock()
	p.token = token
	p.mu.Unlock()

	p.notify(&identity)
	return identity, nil
}
