package content

import (
	"errors"
	"fmt"
)

// Sentinel kinds for content errors.
var (
	ErrLoadDocument = errors.New("load content document failed")
	ErrInvalidSlug  = errors.New("invalid slug")
	ErrNotFound     = errors.New("content not found")
)

// Wrap annotates an external error with an operation and a sentinel kind.
func Wrap(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// NewKind creates an error of the given kind with a detail message.
func NewKind(op string, kind error, detail string) error {
	return fmt.Errorf("%s: %w: %s", op, kind, detail)
}
