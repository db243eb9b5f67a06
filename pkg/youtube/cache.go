package youtube

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedResolver memoizes Resolve outcomes. Video lists are re-annotated on
// every snapshot push, so the same links are resolved over and over; the
// cache keeps that O(1) per link. Failures are cached too, so a bad link stays
// bad until the document changes.
type CachedResolver struct {
	cache *lru.Cache[string, resolution]
}

type resolution struct {
	embed Embed
	err   error
}

// NewCachedResolver creates a CachedResolver holding at most size links.
func NewCachedResolver(size int) (*CachedResolver, error) {
	cache, err := lru.New[string, resolution](size)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{cache: cache}, nil
}

// Resolve behaves exactly like the package-level Resolve.
func (r *CachedResolver) Resolve(raw string) (Embed, error) {
	if res, ok := r.cache.Get(raw); ok {
		return res.embed, res.err
	}

	embed, err := Resolve(raw)
	r.cache.Add(raw, resolution{embed: embed, err: err})
	return embed, err
}
