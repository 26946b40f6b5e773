package video

import (
	"context"

	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/pkg/errors"
)

// GetMediaCommand requests the stored payload of one media slot.
type GetMediaCommand struct {
	VideoID   string
	MediaType string
}

// MediaOutput is the stored payload ready to be streamed back by the caller.
type MediaOutput struct {
	Content     []byte
	ContentType string
	Name        string
}

// GetMediaUseCase fetches a stored media resource for a video and slot.
type GetMediaUseCase struct {
	mediaGateway video.MediaResourceGateway
}

// NewGetMediaUseCase wires the media retrieval use case.
func NewGetMediaUseCase(mediaGateway video.MediaResourceGateway) *GetMediaUseCase {
	return &GetMediaUseCase{mediaGateway: mediaGateway}
}

// Execute parses the slot name and looks the resource up. Unknown slot names
// and missing resources are both not-found outcomes.
func (uc *GetMediaUseCase) Execute(ctx context.Context, cmd GetMediaCommand) (MediaOutput, error) {
	anID := video.IDFrom(cmd.VideoID)

	mediaType, ok := video.ParseMediaType(cmd.MediaType)
	if !ok {
		return MediaOutput{}, errors.NotFoundf("Media type %s doesn't exists", cmd.MediaType)
	}

	resource, found, err := uc.mediaGateway.GetResource(ctx, anID, mediaType)
	if err != nil {
		return MediaOutput{}, err
	}
	if !found {
		return MediaOutput{}, errors.NotFoundf("Resource %s not found for video %s", mediaType.String(), anID.String())
	}

	return MediaOutput{
		Content:     resource.Content,
		ContentType: resource.ContentType,
		Name:        resource.Name,
	}, nil
}
