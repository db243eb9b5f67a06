package sync

import (
	"context"
	"errors"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

var ErrAlreadyStarted = errors.New("syncer already started")

// Start opens the live watch on the collection. The first snapshot arrives
// asynchronously, like every later one.
func (s *Syncer) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	cancel, err := s.repo.WatchCollection(ctx, s.collection, s.apply, s.fail)
	if err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.cancel = cancel
	if s.stopped {
		// Stop raced Start; tear the watch down immediately.
		s.mu.Unlock()
		cancel()
		return nil
	}
	s.mu.Unlock()

	s.l.Infof(ctx, "sync: watching collection %s", s.collection)
	return nil
}

// Stop cancels the watch. Idempotent; once stopped no push, even one already
// in flight, changes the snapshot.
func (s *Syncer) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Snapshot returns a copy of the current ordered items. After a subscription
// error this is the last healthy snapshot, stale but present.
func (s *Syncer) Snapshot() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Err returns the latched subscription error message, or "" while healthy.
func (s *Syncer) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Subscribe registers an observer called with a snapshot copy on every
// applied push. The returned func unregisters it; safe to call twice.
func (s *Syncer) Subscribe(fn func([]model.Item)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// apply replaces the snapshot with a freshly pushed one and notifies
// subscribers. Pushes arriving after Stop or after an error are dropped.
func (s *Syncer) apply(items []model.Item) {
	s.mu.Lock()
	if s.stopped || s.errMsg != "" {
		s.mu.Unlock()
		return
	}
	s.items = items

	subs := make([]func([]model.Item), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		out := make([]model.Item, len(items))
		copy(out, items)
		fn(out)
	}
}

// fail latches the subscription error. The previous snapshot stays visible
// and no retry is attempted here; restarting is an operator decision.
func (s *Syncer) fail(err error) {
	s.mu.Lock()
	if s.stopped || s.errMsg != "" {
		s.mu.Unlock()
		return
	}
	s.errMsg = err.Error()
	s.mu.Unlock()

	s.l.Errorf(context.Background(), "sync: collection %s subscription broken: %v", s.collection, err)
}
