package usecase

import (
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// knownFields is the set of draft field names accepted by UpdateField.
var knownFields = map[string]struct{}{
	content.FieldTitle:       {},
	content.FieldDescription: {},
	content.FieldCategory:    {},
	content.FieldImageURL:    {},
	content.FieldYouTubeURL:  {},
}

// SelectVariant switches the active form, dropping any in-progress draft and
// editing target. An item never changes variant in place; the form is keyed
// on the selection made here.
func (uc *implEditor) SelectVariant(v model.Variant) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.selectedVariant = v
	uc.editingTarget = nil
	uc.draft = content.Draft{}
}

// UpdateField sets one draft field. Values are not validated here;
// required-field enforcement happens at the form boundary.
func (uc *implEditor) UpdateField(name, value string) error {
	if _, ok := knownFields[name]; !ok {
		return content.ErrUnknownField
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.draft[name] = value
	return nil
}

// BeginEdit loads an existing item into the form. The variant comes from the
// item's explicit tag.
func (uc *implEditor) BeginEdit(item model.Item) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	variant := item.Variant
	if variant != model.VariantVideo {
		variant = model.VariantArticle
	}

	draft := content.Draft{
		content.FieldTitle:       item.Title,
		content.FieldDescription: item.Description,
	}
	if variant == model.VariantVideo {
		draft[content.FieldYouTubeURL] = item.YouTubeURL
	} else {
		draft[content.FieldCategory] = item.Category
		draft[content.FieldImageURL] = item.ImageURL
	}

	target := item
	uc.editingTarget = &target
	uc.selectedVariant = variant
	uc.draft = draft
}

// CancelEdit drops the editing target and draft, keeping the variant.
func (uc *implEditor) CancelEdit() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.editingTarget = nil
	uc.draft = content.Draft{}
}

// State returns a copy of the current editor state.
func (uc *implEditor) State() content.EditorState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state := content.EditorState{
		SelectedVariant: uc.selectedVariant,
		Draft:           uc.draft.Clone(),
		LastError:       uc.lastError,
	}
	if uc.editingTarget != nil {
		target := *uc.editingTarget
		state.EditingTarget = &target
	}
	return state
}
