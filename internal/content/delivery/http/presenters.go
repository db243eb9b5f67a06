package http

import (
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/sync"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/response"
)

// placeholderImageURL fills in for articles published without an image.
const placeholderImageURL = "https://placehold.co/600x400/1a202c/d4af37?text=Image"

// --- Response DTOs ---

type itemResp struct {
	ID          string            `json:"id"`
	Variant     model.Variant     `json:"variant"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Timestamp   response.DateTime `json:"timestamp"`

	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	YouTubeURL   string `json:"youtubeUrl,omitempty"`
	EmbedURL     string `json:"embedUrl,omitempty"`
	InvalidVideo bool   `json:"invalidVideo,omitempty"`
}

func (h *handler) newItemResp(item model.Item) itemResp {
	resp := itemResp{
		ID:          item.ID,
		Variant:     item.Variant,
		Title:       item.Title,
		Description: item.Description,
		Timestamp:   response.DateTime(item.Timestamp),
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		YouTubeURL:  item.YouTubeURL,
	}

	switch item.Variant {
	case model.VariantVideo:
		// A bad link marks this one card invalid; the rest of the list is
		// unaffected.
		embed, err := h.resolver.Resolve(item.YouTubeURL)
		if err != nil {
			resp.InvalidVideo = true
		} else {
			resp.EmbedURL = embed.URL()
		}
	default:
		if resp.ImageURL == "" {
			resp.ImageURL = placeholderImageURL
		}
	}

	return resp
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
	// Error carries the latched subscription error; the items above are the
	// last healthy snapshot when it is set.
	Error string `json:"error,omitempty"`
}

func (h *handler) newListResp(s *sync.Syncer) listResp {
	items := s.Snapshot()
	resp := listResp{
		Items: make([]itemResp, len(items)),
		Total: len(items),
		Error: s.Err(),
	}
	for i, item := range items {
		resp.Items[i] = h.newItemResp(item)
	}
	return resp
}

func (h *handler) newSnapshotResp(items []model.Item) listResp {
	resp := listResp{
		Items: make([]itemResp, len(items)),
		Total: len(items),
	}
	for i, item := range items {
		resp.Items[i] = h.newItemResp(item)
	}
	return resp
}

type editorStateResp struct {
	SelectedVariant model.Variant     `json:"selectedVariant"`
	Draft           map[string]string `json:"draft"`
	EditingTarget   *itemResp         `json:"editingTarget,omitempty"`
	LastError       string            `json:"lastError,omitempty"`
}

func (h *handler) newEditorStateResp(state content.EditorState) editorStateResp {
	resp := editorStateResp{
		SelectedVariant: state.SelectedVariant,
		Draft:           state.Draft,
		LastError:       state.LastError,
	}
	if state.EditingTarget != nil {
		target := h.newItemResp(*state.EditingTarget)
		resp.EditingTarget = &target
	}
	return resp
}
