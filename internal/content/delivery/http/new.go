package http

import (
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/sync"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/youtube"
)

type handler struct {
	l        log.Logger
	editor   content.Editor
	articles *sync.Syncer
	videos   *sync.Syncer
	resolver *youtube.CachedResolver
}

// New creates the HTTP handler for the content domain. The two syncers feed
// both the public lists and the admin panel; the editor carries every
// mutation.
func New(l log.Logger, editor content.Editor, articles, videos *sync.Syncer, resolver *youtube.CachedResolver) *handler {
	return &handler{
		l:        l,
		editor:   editor,
		articles: articles,
		videos:   videos,
		resolver: resolver,
	}
}

func (h *handler) syncerFor(collection string) *sync.Syncer {
	switch collection {
	case model.CollectionArticles:
		return h.articles
	case model.CollectionVideos:
		return h.videos
	default:
		return nil
	}
}
