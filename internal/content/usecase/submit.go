package usecase

import (
	"context"
	"fmt"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content/repository"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// Submit issues a create or a full-overwrite update from the current draft.
// The store assigns the fresh timestamp on either path. On failure the draft
// and editing target are left untouched so the operator can retry, and the
// error message is kept as LastError.
func (uc *implEditor) Submit(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Required fields are enforced by the form; this is a defensive check
	// only. Nothing is ever filled in silently.
	for _, field := range content.RequiredFields(uc.selectedVariant) {
		if uc.draft[field] == "" {
			err := fmt.Errorf("%w: %s", content.ErrMissingField, field)
			uc.lastError = err.Error()
			return err
		}
	}

	if uc.editingTarget != nil {
		target := *uc.editingTarget
		_, err := uc.repo.OverwriteItem(ctx, repository.OverwriteItemOptions{
			Collection:  model.CollectionFor(target.Variant),
			ID:          target.ID,
			Title:       uc.draft[content.FieldTitle],
			Description: uc.draft[content.FieldDescription],
			Category:    uc.draft[content.FieldCategory],
			ImageURL:    uc.draft[content.FieldImageURL],
			YouTubeURL:  uc.draft[content.FieldYouTubeURL],
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Submit OverwriteItem %s: %v", target.ID, err)
			uc.lastError = err.Error()
			return err
		}

		uc.editingTarget = nil
		uc.draft = content.Draft{}
		uc.lastError = ""
		return nil
	}

	_, err := uc.repo.CreateItem(ctx, repository.CreateItemOptions{
		Variant:     uc.selectedVariant,
		Title:       uc.draft[content.FieldTitle],
		Description: uc.draft[content.FieldDescription],
		Category:    uc.draft[content.FieldCategory],
		ImageURL:    uc.draft[content.FieldImageURL],
		YouTubeURL:  uc.draft[content.FieldYouTubeURL],
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit CreateItem: %v", err)
		uc.lastError = err.Error()
		return err
	}

	uc.draft = content.Draft{}
	uc.lastError = ""
	return nil
}

// Remove deletes an item after interactive confirmation. Declining is a
// no-op. The live views pick the deletion up through their own watches.
func (uc *implEditor) Remove(ctx context.Context, collection, id string, confirm content.ConfirmFunc) error {
	if confirm == nil || !confirm(content.DeleteConfirmPrompt) {
		return nil
	}

	if err := uc.repo.DeleteItem(ctx, collection, id); err != nil {
		uc.l.Errorf(ctx, "uc.Remove DeleteItem %s/%s: %v", collection, id, err)
		uc.mu.Lock()
		uc.lastError = err.Error()
		uc.mu.Unlock()
		return err
	}

	return nil
}
