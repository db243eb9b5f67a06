package content

import (
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// Draft field names. They match the document field names one-to-one so a
// draft can be loaded from and submitted as a full document.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldImageURL    = "imageUrl"
	FieldYouTubeURL  = "youtubeUrl"
)

// Draft is unsaved, in-progress form state. It has no ID and no timestamp;
// it becomes an Item only on successful submission.
type Draft map[string]string

// Clone returns an independent copy of the draft.
func (d Draft) Clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// RequiredFields lists the fields a variant must carry on submission.
func RequiredFields(v model.Variant) []string {
	if v == model.VariantVideo {
		return []string{FieldTitle, FieldYouTubeURL, FieldDescription}
	}
	return []string{FieldTitle, FieldCategory, FieldImageURL, FieldDescription}
}

// EditorState is a point-in-time view of the editor for the presentation
// layer. Draft is a copy; mutating it does not touch the workflow.
type EditorState struct {
	SelectedVariant model.Variant
	Draft           Draft
	EditingTarget   *model.Item
	LastError       string
}

// Editing reports whether an existing item is being edited.
func (s EditorState) Editing() bool {
	return s.EditingTarget != nil
}

// ConfirmFunc is the interactive confirmation hook for destructive
// operations. It receives the prompt shown to the operator and reports
// whether they accepted.
type ConfirmFunc func(prompt string) bool

// DeleteConfirmPrompt is shown before every delete.
const DeleteConfirmPrompt = "Are you sure you want to delete this item?"
