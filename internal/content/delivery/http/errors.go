package http

import (
	"errors"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/content"
)

var (
	errUnknownCollection = errors.New("unknown collection")
	errItemMissing       = errors.New("item not found in collection snapshot")
)

// mapError translates domain errors for the HTTP boundary. Store failures
// pass through verbatim so the operator sees the diagnostic text inline.
func (h *handler) mapError(err error) error {
	if errors.Is(err, content.ErrItemNotFound) {
		return errItemMissing
	}
	return err
}
