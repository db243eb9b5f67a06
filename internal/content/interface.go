package content

import (
	"context"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// Editor is the admin create/edit/delete workflow. All mutating store calls
// go through it; the live collection views observe the results indirectly
// through their own subscriptions; the editor never patches a snapshot.
type Editor interface {
	// SelectVariant switches the active form. Clears the draft and any
	// editing target.
	SelectVariant(v model.Variant)

	// UpdateField sets a single draft field. No validation happens here.
	UpdateField(name, value string) error

	// BeginEdit loads an existing item into the draft for a full-overwrite
	// update.
	BeginEdit(item model.Item)

	// CancelEdit drops the editing target and draft, keeping the selected
	// variant.
	CancelEdit()

	// Submit issues a create (no editing target) or a full-overwrite update
	// (editing target set). On failure the draft is preserved for retry and
	// the error is kept as LastError.
	Submit(ctx context.Context) error

	// Remove deletes an item after interactive confirmation. Declining is a
	// no-op.
	Remove(ctx context.Context, collection, id string, confirm ConfirmFunc) error

	// State returns a copy of the current editor state.
	State() EditorState
}
