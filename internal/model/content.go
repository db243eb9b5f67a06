package model

import "time"

// Variant tags which kind of published record an Item is. It is set once at
// creation and persisted with the document, never inferred from which fields
// happen to be filled.
type Variant string

const (
	VariantArticle Variant = "article"
	VariantVideo   Variant = "video"
)

// Collection names in the document store, one per variant.
const (
	CollectionArticles = "articles"
	CollectionVideos   = "videos"
)

// CollectionFor returns the collection name holding items of the variant.
func CollectionFor(v Variant) string {
	if v == VariantVideo {
		return CollectionVideos
	}
	return CollectionArticles
}

// VariantForCollection is the inverse of CollectionFor.
func VariantForCollection(collection string) Variant {
	if collection == CollectionVideos {
		return VariantVideo
	}
	return VariantArticle
}

// Item is a published Article or Video record.
//
// ID and Timestamp are assigned by the store: ID on creation (stable, unique
// within its collection), Timestamp on every write (used only for ordering,
// newest first).
type Item struct {
	ID          string    `json:"id"`
	Variant     Variant   `json:"variant"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`

	// Article fields
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	// Video fields
	YouTubeURL string `json:"youtubeUrl,omitempty"`
}
