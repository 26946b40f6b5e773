package video

import (
	"context"
	"fmt"

	"github.com/reelstack/catalog/internal/domain/events"
	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/pkg/errors"
	"github.com/reelstack/catalog/pkg/interfaces"
)

// UploadMediaCommand targets one media slot of an existing video with a raw
// upload.
type UploadMediaCommand struct {
	VideoID  string
	Resource video.VideoResource
}

// UploadMediaOutput reports which slot was stored for which video.
type UploadMediaOutput struct {
	VideoID   string
	MediaType video.MediaType
}

// UploadMediaUseCase stores a single uploaded resource, attaches it to the
// matching aggregate slot and persists the aggregate.
type UploadMediaUseCase struct {
	videoGateway video.Gateway
	mediaGateway video.MediaResourceGateway
	publisher    events.Publisher
	logger       interfaces.Logger
}

// NewUploadMediaUseCase wires the upload use case.
func NewUploadMediaUseCase(
	videoGateway video.Gateway,
	mediaGateway video.MediaResourceGateway,
	publisher events.Publisher,
	logger interfaces.Logger,
) *UploadMediaUseCase {
	return &UploadMediaUseCase{
		videoGateway: videoGateway,
		mediaGateway: mediaGateway,
		publisher:    publisher,
		logger:       logger,
	}
}

// Execute loads the target video, stores the resource through the gateway
// method matching its declared type and persists the updated aggregate.
func (uc *UploadMediaUseCase) Execute(ctx context.Context, cmd UploadMediaCommand) (UploadMediaOutput, error) {
	anID := video.IDFrom(cmd.VideoID)

	aVideo, err := uc.videoGateway.FindByID(ctx, anID)
	if err != nil {
		return UploadMediaOutput{}, err
	}
	if aVideo == nil {
		return UploadMediaOutput{}, errors.NotFoundf("Video with ID %s was not found", anID.String())
	}

	mediaType := cmd.Resource.MediaType()
	if mediaType.IsAudioVideo() {
		media, err := uc.mediaGateway.StoreAudioVideo(ctx, anID, cmd.Resource)
		if err != nil {
			return UploadMediaOutput{}, uc.internalError(anID, err)
		}
		if mediaType == video.MediaTypeVideo {
			aVideo.UpdateVideoMedia(media)
		} else {
			aVideo.UpdateTrailerMedia(media)
		}
	} else {
		media, err := uc.mediaGateway.StoreImage(ctx, anID, cmd.Resource)
		if err != nil {
			return UploadMediaOutput{}, uc.internalError(anID, err)
		}
		switch mediaType {
		case video.MediaTypeBanner:
			aVideo.UpdateBannerMedia(media)
		case video.MediaTypeThumbnail:
			aVideo.UpdateThumbnailMedia(media)
		case video.MediaTypeThumbnailHalf:
			aVideo.UpdateThumbnailHalfMedia(media)
		}
	}

	updated, err := uc.videoGateway.Update(ctx, aVideo)
	if err != nil {
		return UploadMediaOutput{}, uc.internalError(anID, err)
	}

	publishEvents(ctx, uc.publisher, uc.logger, updated)

	return UploadMediaOutput{
		VideoID:   updated.ID().String(),
		MediaType: cmd.Resource.MediaType(),
	}, nil
}

func (uc *UploadMediaUseCase) internalError(anID video.ID, err error) error {
	return errors.Internal(
		fmt.Sprintf("An error occurred while storing media for video [VideoID: %s]", anID.String()), err)
}
