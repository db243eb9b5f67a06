package youtube

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when a link cannot be resolved to a video ID.
var ErrInvalidURL = errors.New("invalid youtube url")

// EmbedURLTemplate is the canonical embeddable player URL.
const EmbedURLTemplate = "https://www.youtube.com/embed/%s"

// Embed is a resolved video reference.
type Embed struct {
	ID string
}

// URL returns the embeddable player URL for the video.
func (e Embed) URL() string {
	return fmt.Sprintf(EmbedURLTemplate, e.ID)
}

// Resolve parses a user-supplied video link into an Embed.
// Two shapes are accepted: short links (https://youtu.be/{id}, ID is the
// first path segment) and watch pages (?v={id}). Everything else, including
// empty input and URLs without a scheme or host, is ErrInvalidURL.
func Resolve(raw string) (Embed, error) {
	if strings.TrimSpace(raw) == "" {
		return Embed{}, fmt.Errorf("%w: empty link", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Embed{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Embed{}, fmt.Errorf("%w: %q is not an absolute url", ErrInvalidURL, raw)
	}

	var id string
	if strings.Contains(u.Host, "youtu.be") {
		id = strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)[0]
	} else {
		id = u.Query().Get("v")
	}
	if id == "" {
		return Embed{}, fmt.Errorf("%w: no video id in %q", ErrInvalidURL, raw)
	}

	return Embed{ID: id}, nil
}
