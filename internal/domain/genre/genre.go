package genre

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID is the opaque identifier of a genre.
type ID string

// NewID generates a fresh genre identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFrom normalizes an external string into a genre identifier.
func IDFrom(value string) ID {
	return ID(strings.ToLower(value))
}

// String returns the raw identifier value.
func (id ID) String() string {
	return string(id)
}

// Genre classifies videos.
type Genre struct {
	ID        ID
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewGenre creates an active genre with fresh identity and timestamps.
func NewGenre(name string) *Genre {
	now := time.Now().UTC()
	return &Genre{
		ID:        NewID(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Gateway is the persistence port for genres consumed by the video use cases.
type Gateway interface {
	// ExistsByIDs returns the subset of the requested ids that are present.
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
