package sync

import (
	"sync"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/repository"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	pkgLog "github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

// Syncer mirrors one collection of the document store into an in-memory
// snapshot. Every push from the store replaces the snapshot wholesale and is
// fanned out to subscribers. Syncers are independent: one per collection,
// with independent failure domains.
type Syncer struct {
	collection string
	repo       repository.Watcher
	l          pkgLog.Logger

	mu      sync.Mutex
	items   []model.Item
	errMsg  string
	started bool
	stopped bool
	cancel  repository.CancelFunc
	nextSub int
	subs    map[int]func([]model.Item)
}

// New creates a Syncer for the named collection. Call Start to begin
// mirroring.
func New(l pkgLog.Logger, repo repository.Watcher, collection string) *Syncer {
	return &Syncer{
		collection: collection,
		repo:       repo,
		l:          l,
		subs:       map[int]func([]model.Item){},
	}
}
