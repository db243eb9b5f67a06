package repository

import (
	"context"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// CancelFunc tears down a watch. Implementations must make it idempotent:
// cancelling twice is a no-op, not an error.
type CancelFunc func()

// Repository is the composed interface for the content document store.
type Repository interface {
	ItemRepository
	Watcher
}

// ItemRepository defines the write and read paths for Items.
//
// IDs and timestamps are assigned by the store: the ID once on create, the
// timestamp on every write. OverwriteItem replaces the whole document; it is
// never a partial patch.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	OverwriteItem(ctx context.Context, opt OverwriteItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, collection, id string) error
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
}

// Watcher delivers the full ordered contents of a collection on every
// change, newest first.
type Watcher interface {
	// WatchCollection calls onItems with the complete ordered collection
	// immediately and again after every change, from any actor. onErr is
	// called when the subscription breaks; no further onItems calls follow
	// an error. The returned CancelFunc stops the watch.
	WatchCollection(ctx context.Context, collection string, onItems func([]model.Item), onErr func(error)) (CancelFunc, error)
}
