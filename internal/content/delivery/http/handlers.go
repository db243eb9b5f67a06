package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/response"
)

// ListArticles returns the live articles snapshot, newest first.
func (h *handler) ListArticles(c *gin.Context) {
	response.OK(c, h.newListResp(h.articles))
}

// ListVideos returns the live videos snapshot, newest first, each annotated
// with its embed URL or marked invalid.
func (h *handler) ListVideos(c *gin.Context) {
	response.OK(c, h.newListResp(h.videos))
}

// Stream pushes the named collection's snapshot as server-sent events: the
// current one immediately, then one per change.
func (h *handler) Stream(c *gin.Context) {
	s := h.syncerFor(c.Param("collection"))
	if s == nil {
		response.Error(c, errUnknownCollection)
		return
	}

	// Buffered so a slow client coalesces pushes instead of blocking the
	// syncer fan-out. Coalescing keeps the latest snapshot: a stale entry is
	// evicted before the new one goes in, so the client always ends on the
	// final state.
	updates := make(chan []model.Item, 8)
	unsubscribe := s.Subscribe(func(items []model.Item) {
		enqueueLatest(updates, items)
	})
	defer unsubscribe()

	updates <- s.Snapshot()

	c.Stream(func(w io.Writer) bool {
		select {
		case items := <-updates:
			c.SSEvent("snapshot", h.newSnapshotResp(items))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// enqueueLatest delivers items to a full channel by evicting stale entries.
// Single producer per channel: the syncer invokes subscribers sequentially.
func enqueueLatest(updates chan []model.Item, items []model.Item) {
	for {
		select {
		case updates <- items:
			return
		default:
			select {
			case <-updates:
			default:
			}
		}
	}
}

// EditorState returns the admin form's current state.
func (h *handler) EditorState(c *gin.Context) {
	response.OK(c, h.newEditorStateResp(h.editor.State()))
}

// SelectVariant switches the admin form between article and video.
func (h *handler) SelectVariant(c *gin.Context) {
	req, err := h.processSelectVariantReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.editor.SelectVariant(req.variant())
	response.OK(c, h.newEditorStateResp(h.editor.State()))
}

// UpdateField sets one draft field.
func (h *handler) UpdateField(c *gin.Context) {
	req, err := h.processUpdateFieldReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.editor.UpdateField(req.Name, req.Value); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newEditorStateResp(h.editor.State()))
}

// BeginEdit loads an existing item into the admin form.
func (h *handler) BeginEdit(c *gin.Context) {
	req, err := h.processBeginEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s := h.syncerFor(req.Collection)
	if s == nil {
		response.Error(c, errUnknownCollection)
		return
	}

	for _, item := range s.Snapshot() {
		if item.ID == req.ID {
			h.editor.BeginEdit(item)
			response.OK(c, h.newEditorStateResp(h.editor.State()))
			return
		}
	}

	h.l.Warnf(c.Request.Context(), "content.BeginEdit: %s/%s not in snapshot", req.Collection, req.ID)
	response.ErrorWithStatus(c, 404, errItemMissing)
}

// CancelEdit drops the editing target and draft.
func (h *handler) CancelEdit(c *gin.Context) {
	h.editor.CancelEdit()
	response.OK(c, h.newEditorStateResp(h.editor.State()))
}

// Submit publishes the draft: create, or full overwrite when editing.
// The updated lists arrive through the collection streams, not this
// response.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.editor.Submit(ctx); err != nil {
		h.l.Errorf(ctx, "content.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newEditorStateResp(h.editor.State()))
}

// Remove deletes an item. The client sends confirmed=true after showing the
// confirmation dialog; anything else is a no-op.
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	confirm := func(string) bool { return req.Confirmed }
	if err := h.editor.Remove(ctx, req.Collection, req.ID, confirm); err != nil {
		h.l.Errorf(ctx, "content.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, gin.H{"deleted": req.Confirmed})
}
