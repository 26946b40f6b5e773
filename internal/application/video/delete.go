package video

import (
	"context"

	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/pkg/interfaces"
)

// DeleteVideoUseCase removes the persisted aggregate and cleans up every
// media blob stored for it.
type DeleteVideoUseCase struct {
	videoGateway video.Gateway
	mediaGateway video.MediaResourceGateway
	logger       interfaces.Logger
}

// NewDeleteVideoUseCase wires the delete use case.
func NewDeleteVideoUseCase(
	videoGateway video.Gateway,
	mediaGateway video.MediaResourceGateway,
	logger interfaces.Logger,
) *DeleteVideoUseCase {
	return &DeleteVideoUseCase{
		videoGateway: videoGateway,
		mediaGateway: mediaGateway,
		logger:       logger,
	}
}

// Execute deletes the record first, then clears stored media so no orphaned
// blobs outlive the aggregate.
func (uc *DeleteVideoUseCase) Execute(ctx context.Context, rawID string) error {
	anID := video.IDFrom(rawID)

	if err := uc.videoGateway.DeleteByID(ctx, anID); err != nil {
		return err
	}

	if err := uc.mediaGateway.ClearResources(ctx, anID); err != nil {
		return err
	}

	uc.logger.Info("video deleted", interfaces.String("video_id", anID.String()))
	return nil
}
