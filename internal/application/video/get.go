package video

import (
	"context"
	"time"

	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/pkg/errors"
)

// VideoOutput is the full projection of a video aggregate returned to
// callers.
type VideoOutput struct {
	ID          string
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Rating      string
	Opened      bool
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Banner        *video.ImageMedia
	Thumbnail     *video.ImageMedia
	ThumbnailHalf *video.ImageMedia
	Trailer       *video.AudioVideoMedia
	Video         *video.AudioVideoMedia

	Categories  []string
	Genres      []string
	CastMembers []string
}

// GetVideoByIDUseCase loads a single aggregate by id.
type GetVideoByIDUseCase struct {
	videoGateway video.Gateway
}

// NewGetVideoByIDUseCase wires the retrieval use case.
func NewGetVideoByIDUseCase(videoGateway video.Gateway) *GetVideoByIDUseCase {
	return &GetVideoByIDUseCase{videoGateway: videoGateway}
}

// Execute resolves the id and projects the aggregate.
func (uc *GetVideoByIDUseCase) Execute(ctx context.Context, rawID string) (VideoOutput, error) {
	anID := video.IDFrom(rawID)

	aVideo, err := uc.videoGateway.FindByID(ctx, anID)
	if err != nil {
		return VideoOutput{}, err
	}
	if aVideo == nil {
		return VideoOutput{}, errors.NotFoundf("Video with ID %s was not found", anID.String())
	}

	return newVideoOutput(aVideo), nil
}

func newVideoOutput(aVideo *video.Video) VideoOutput {
	out := VideoOutput{
		ID:          aVideo.ID().String(),
		Title:       aVideo.Title(),
		Description: aVideo.Description(),
		LaunchedAt:  aVideo.LaunchedAt(),
		Duration:    aVideo.Duration(),
		Rating:      aVideo.Rating().String(),
		Opened:      aVideo.Opened(),
		Published:   aVideo.Published(),
		CreatedAt:   aVideo.CreatedAt(),
		UpdatedAt:   aVideo.UpdatedAt(),
	}

	if media, ok := aVideo.Banner(); ok {
		out.Banner = &media
	}
	if media, ok := aVideo.Thumbnail(); ok {
		out.Thumbnail = &media
	}
	if media, ok := aVideo.ThumbnailHalf(); ok {
		out.ThumbnailHalf = &media
	}
	if media, ok := aVideo.Trailer(); ok {
		out.Trailer = &media
	}
	if media, ok := aVideo.Video(); ok {
		out.Video = &media
	}

	for _, id := range aVideo.Categories() {
		out.Categories = append(out.Categories, id.String())
	}
	for _, id := range aVideo.Genres() {
		out.Genres = append(out.Genres, id.String())
	}
	for _, id := range aVideo.CastMembers() {
		out.CastMembers = append(out.CastMembers, id.String())
	}

	return out
}
