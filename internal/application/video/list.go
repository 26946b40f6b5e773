package video

import (
	"context"
	"time"

	"github.com/reelstack/catalog/internal/domain/pagination"
	"github.com/reelstack/catalog/internal/domain/video"
)

// VideoListOutput is one row of a paginated listing.
type VideoListOutput struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListVideosUseCase runs a filtered, paginated listing of video previews.
type ListVideosUseCase struct {
	videoGateway video.Gateway
}

// NewListVideosUseCase wires the listing use case.
func NewListVideosUseCase(videoGateway video.Gateway) *ListVideosUseCase {
	return &ListVideosUseCase{videoGateway: videoGateway}
}

// Execute delegates to the gateway and maps the page of previews.
func (uc *ListVideosUseCase) Execute(ctx context.Context, query video.SearchQuery) (pagination.Page[VideoListOutput], error) {
	page, err := uc.videoGateway.FindAll(ctx, query)
	if err != nil {
		return pagination.Page[VideoListOutput]{}, err
	}

	return pagination.Map(page, func(p video.Preview) VideoListOutput {
		return VideoListOutput{
			ID:          p.ID.String(),
			Title:       p.Title,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
	}), nil
}
