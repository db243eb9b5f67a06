package repository

import "github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"

// CreateItemOptions holds the full field set for a new document. The store
// assigns ID and timestamp.
type CreateItemOptions struct {
	Variant     model.Variant
	Title       string
	Description string
	Category    string
	ImageURL    string
	YouTubeURL  string
}

// OverwriteItemOptions holds the full replacement field set for an existing
// document. The store reassigns the timestamp; every other stored field is
// taken from here; last writer wins.
type OverwriteItemOptions struct {
	Collection  string
	ID          string
	Title       string
	Description string
	Category    string
	ImageURL    string
	YouTubeURL  string
}

// ListItemsOptions selects a collection. Results are always ordered by
// timestamp descending.
type ListItemsOptions struct {
	Collection string
}
