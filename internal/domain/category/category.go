package category

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID is the opaque identifier of a category.
type ID string

// NewID generates a fresh category identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFrom normalizes an external string into a category identifier.
func IDFrom(value string) ID {
	return ID(strings.ToLower(value))
}

// String returns the raw identifier value.
func (id ID) String() string {
	return string(id)
}

// Category groups videos under a curated label.
type Category struct {
	ID          ID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewCategory creates an active category with fresh identity and timestamps.
func NewCategory(name, description string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Gateway is the persistence port for categories consumed by the video use
// cases. The catalog core only needs existence checks; full category CRUD
// lives behind its own service surface.
type Gateway interface {
	// ExistsByIDs returns the subset of the requested ids that are present.
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
