package castmember

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID is the opaque identifier of a cast member.
type ID string

// NewID generates a fresh cast member identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFrom normalizes an external string into a cast member identifier.
func IDFrom(value string) ID {
	return ID(strings.ToLower(value))
}

// String returns the raw identifier value.
func (id ID) String() string {
	return string(id)
}

// Type discriminates the role a cast member plays in a production.
type Type string

const (
	TypeActor    Type = "ACTOR"
	TypeDirector Type = "DIRECTOR"
)

// ParseType resolves an external string into a cast member type.
func ParseType(value string) (Type, bool) {
	switch Type(strings.ToUpper(value)) {
	case TypeActor:
		return TypeActor, true
	case TypeDirector:
		return TypeDirector, true
	default:
		return "", false
	}
}

// CastMember is a person credited on videos.
type CastMember struct {
	ID        ID
	Name      string
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCastMember creates a cast member with fresh identity and timestamps.
func NewCastMember(name string, memberType Type) *CastMember {
	now := time.Now().UTC()
	return &CastMember{
		ID:        NewID(),
		Name:      name,
		Type:      memberType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Gateway is the persistence port for cast members consumed by the video use
// cases.
type Gateway interface {
	// ExistsByIDs returns the subset of the requested ids that are present.
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
