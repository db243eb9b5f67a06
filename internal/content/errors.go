package content

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrMissingField = errors.New("required field is empty")
	ErrUnknownField = errors.New("unknown draft field")
)
