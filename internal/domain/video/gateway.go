package video

import (
	"context"
	"time"

	"github.com/reelstack/catalog/internal/domain/castmember"
	"github.com/reelstack/catalog/internal/domain/category"
	"github.com/reelstack/catalog/internal/domain/genre"
	"github.com/reelstack/catalog/internal/domain/pagination"
)

// Preview is the trimmed projection returned by paginated listings.
type Preview struct {
	ID          ID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SearchQuery narrows and orders a paginated video listing, optionally
// filtering by related aggregate ids.
type SearchQuery struct {
	pagination.SearchQuery
	Categories  []category.ID
	Genres      []genre.ID
	CastMembers []castmember.ID
}

// Gateway is the persistence port for the video aggregate.
type Gateway interface {
	Create(ctx context.Context, v *Video) (*Video, error)
	Update(ctx context.Context, v *Video) (*Video, error)
	FindByID(ctx context.Context, id ID) (*Video, error)
	DeleteByID(ctx context.Context, id ID) error
	FindAll(ctx context.Context, query SearchQuery) (pagination.Page[Preview], error)
}

// MediaResourceGateway stores and retrieves raw media blobs on behalf of the
// aggregate. Implementations own cancellation and timeouts; the use cases
// treat any error as a hard failure.
type MediaResourceGateway interface {
	StoreAudioVideo(ctx context.Context, id ID, resource VideoResource) (AudioVideoMedia, error)
	StoreImage(ctx context.Context, id ID, resource VideoResource) (ImageMedia, error)
	ClearResources(ctx context.Context, id ID) error
	GetResource(ctx context.Context, id ID, mediaType MediaType) (Resource, bool, error)
}
