package video

import (
	"strings"

	"github.com/google/uuid"
)

// ID is the opaque identifier of a video aggregate. Values are normalized to
// lowercase so lookups are insensitive to how callers spell them.
type ID string

// NewID generates a fresh video identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFrom normalizes an external string into a video identifier.
func IDFrom(value string) ID {
	return ID(strings.ToLower(value))
}

// String returns the raw identifier value.
func (id ID) String() string {
	return string(id)
}
