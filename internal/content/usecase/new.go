package usecase

import (
	"sync"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/repository"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

// implEditor is the private implementation of content.Editor.
//
// All form state is guarded by mu; the workflow is single-writer by
// construction (one admin session drives it), the mutex just keeps State()
// readers consistent.
type implEditor struct {
	repo repository.ItemRepository
	l    log.Logger

	mu              sync.Mutex
	selectedVariant model.Variant
	draft           content.Draft
	editingTarget   *model.Item
	lastError       string
}

var _ content.Editor = (*implEditor)(nil)

// New creates a new Editor. The form starts on the Article variant with an
// empty draft.
func New(l log.Logger, repo repository.ItemRepository) *implEditor {
	return &implEditor{
		repo:            repo,
		l:               l,
		selectedVariant: model.VariantArticle,
		draft:           content.Draft{},
	}
}
