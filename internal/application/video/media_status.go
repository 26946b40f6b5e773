package video

import (
	"context"
	"fmt"

	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/pkg/errors"
	"github.com/reelstack/catalog/pkg/interfaces"
)

// UpdateMediaStatusCommand is the encoder callback payload: which video,
// which media (by its internal id, not the video id), and where the encoded
// output landed.
type UpdateMediaStatusCommand struct {
	Status   video.MediaStatus
	VideoID  string
	MediaID  string
	Folder   string
	Filename string
}

// UpdateMediaStatusUseCase reconciles encoding progress reported by the
// external encoder into the aggregate's video or trailer slot.
type UpdateMediaStatusUseCase struct {
	videoGateway video.Gateway
	logger       interfaces.Logger
}

// NewUpdateMediaStatusUseCase wires the media status use case.
func NewUpdateMediaStatusUseCase(videoGateway video.Gateway, logger interfaces.Logger) *UpdateMediaStatusUseCase {
	return &UpdateMediaStatusUseCase{videoGateway: videoGateway, logger: logger}
}

// Execute loads the video and applies the reported status to whichever
// audio/video slot the media id matches. A media id matching neither slot is
// a no-op: nothing is persisted.
func (uc *UpdateMediaStatusUseCase) Execute(ctx context.Context, cmd UpdateMediaStatusCommand) error {
	anID := video.IDFrom(cmd.VideoID)

	aVideo, err := uc.videoGateway.FindByID(ctx, anID)
	if err != nil {
		return err
	}
	if aVideo == nil {
		return errors.NotFoundf("Video with ID %s was not found", anID.String())
	}

	encodedPath := fmt.Sprintf("%s/%s", cmd.Folder, cmd.Filename)

	if media, ok := aVideo.Video(); ok && media.MediaID() == cmd.MediaID {
		return uc.apply(ctx, video.MediaTypeVideo, cmd.Status, aVideo, encodedPath)
	}
	if media, ok := aVideo.Trailer(); ok && media.MediaID() == cmd.MediaID {
		return uc.apply(ctx, video.MediaTypeTrailer, cmd.Status, aVideo, encodedPath)
	}

	uc.logger.Debug("ignored media status update for unknown media id",
		interfaces.String("video_id", anID.String()),
		interfaces.String("media_id", cmd.MediaID))
	return nil
}

func (uc *UpdateMediaStatusUseCase) apply(
	ctx context.Context,
	mediaType video.MediaType,
	status video.MediaStatus,
	aVideo *video.Video,
	encodedPath string,
) error {
	switch status {
	case video.MediaStatusPending:
		// The encoder never reports a transition back to pending.
	case video.MediaStatusProcessing:
		aVideo.Processing(mediaType)
	case video.MediaStatusCompleted:
		aVideo.Completed(mediaType, encodedPath)
	}

	if _, err := uc.videoGateway.Update(ctx, aVideo); err != nil {
		return errors.Internal(
			fmt.Sprintf("An error occurred while updating video [VideoID: %s]", aVideo.ID().String()), err)
	}

	return nil
}
