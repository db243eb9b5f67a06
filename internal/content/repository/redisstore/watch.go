package redisstore

import (
	"context"
	"sync"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/repository"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// WatchCollection subscribes to the collection's event channel and reloads
// the full ordered collection on every event. The initial snapshot is
// delivered asynchronously, like every later one.
//
// After an error is reported through onErr the watch goroutine exits and no
// further onItems calls are made. Cancel is idempotent.
func (r *implRepository) WatchCollection(ctx context.Context, collection string, onItems func([]model.Item), onErr func(error)) (repository.CancelFunc, error) {
	wctx, stop := context.WithCancel(ctx)

	sub := r.client.Subscribe(wctx, eventsChannel(collection))
	// Force the subscription onto the wire before the initial load so no
	// write between load and subscribe is missed.
	if _, err := sub.Receive(wctx); err != nil {
		stop()
		_ = sub.Close()
		return nil, err
	}

	go func() {
		ch := sub.Channel()

		load := func() bool {
			items, err := r.ListItems(wctx, repository.ListItemsOptions{Collection: collection})
			if err != nil {
				if wctx.Err() == nil {
					onErr(err)
				}
				return false
			}
			onItems(items)
			return true
		}

		if !load() {
			return
		}

		for {
			select {
			case <-wctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				if !load() {
					return
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			stop()
			if err := sub.Close(); err != nil {
				r.l.Warnf(context.Background(), "redisstore.WatchCollection close %s: %v", collection, err)
			}
		})
	}

	return cancel, nil
}
