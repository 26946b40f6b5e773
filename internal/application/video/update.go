package video

import (
	"context"
	"fmt"

	"github.com/reelstack/catalog/internal/domain/castmember"
	"github.com/reelstack/catalog/internal/domain/category"
	"github.com/reelstack/catalog/internal/domain/events"
	"github.com/reelstack/catalog/internal/domain/genre"
	"github.com/reelstack/catalog/internal/domain/validation"
	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/pkg/errors"
	"github.com/reelstack/catalog/pkg/interfaces"
)

// UpdateVideoCommand carries the raw inputs for a full video update.
type UpdateVideoCommand struct {
	ID          string
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Rating      string
	Opened      bool
	Published   bool
	Categories  []string
	Genres      []string
	CastMembers []string

	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// UpdateVideoOutput identifies the updated aggregate.
type UpdateVideoOutput struct {
	ID string
}

// UpdateVideoUseCase mirrors creation but mutates a loaded aggregate in
// place. Unlike creation, a persistence failure leaves already-stored media
// alone: the blobs may belong to a still-valid prior state.
type UpdateVideoUseCase struct {
	categoryGateway   category.Gateway
	genreGateway      genre.Gateway
	castMemberGateway castmember.Gateway
	videoGateway      video.Gateway
	mediaGateway      video.MediaResourceGateway
	publisher         events.Publisher
	logger            interfaces.Logger
}

// NewUpdateVideoUseCase wires the update use case.
func NewUpdateVideoUseCase(
	categoryGateway category.Gateway,
	genreGateway genre.Gateway,
	castMemberGateway castmember.Gateway,
	videoGateway video.Gateway,
	mediaGateway video.MediaResourceGateway,
	publisher events.Publisher,
	logger interfaces.Logger,
) *UpdateVideoUseCase {
	return &UpdateVideoUseCase{
		categoryGateway:   categoryGateway,
		genreGateway:      genreGateway,
		castMemberGateway: castMemberGateway,
		videoGateway:      videoGateway,
		mediaGateway:      mediaGateway,
		publisher:         publisher,
		logger:            logger,
	}
}

// Execute loads the aggregate, applies the command and persists. Field
// validation and the three existence checks all run before any media is
// stored, and every failure is aggregated into one NotificationError.
func (uc *UpdateVideoUseCase) Execute(ctx context.Context, cmd UpdateVideoCommand) (UpdateVideoOutput, error) {
	anID := video.IDFrom(cmd.ID)

	aVideo, err := uc.videoGateway.FindByID(ctx, anID)
	if err != nil {
		return UpdateVideoOutput{}, err
	}
	if aVideo == nil {
		return UpdateVideoOutput{}, errors.NotFoundf("Video with ID %s was not found", anID.String())
	}

	rating, _ := video.ParseRating(cmd.Rating)
	categories := toIdentifiers(cmd.Categories, category.IDFrom)
	genres := toIdentifiers(cmd.Genres, genre.IDFrom)
	members := toIdentifiers(cmd.CastMembers, castmember.IDFrom)

	notification := validation.NewNotification()

	categoriesCheck, err := checkAggregateExists(ctx, "categories", categories, uc.categoryGateway.ExistsByIDs)
	if err != nil {
		return UpdateVideoOutput{}, err
	}
	notification.AppendHandler(categoriesCheck)

	genresCheck, err := checkAggregateExists(ctx, "genres", genres, uc.genreGateway.ExistsByIDs)
	if err != nil {
		return UpdateVideoOutput{}, err
	}
	notification.AppendHandler(genresCheck)

	membersCheck, err := checkAggregateExists(ctx, "cast members", members, uc.castMemberGateway.ExistsByIDs)
	if err != nil {
		return UpdateVideoOutput{}, err
	}
	notification.AppendHandler(membersCheck)

	aVideo.Update(
		cmd.Title,
		cmd.Description,
		cmd.LaunchedAt,
		cmd.Duration,
		rating,
		cmd.Opened,
		cmd.Published,
		categories,
		genres,
		members,
	)

	aVideo.Validate(notification)

	if notification.HasErrors() {
		return UpdateVideoOutput{}, validation.NewNotificationError("Could not update Aggregate Video", notification)
	}

	updated, err := uc.update(ctx, cmd, aVideo)
	if err != nil {
		return UpdateVideoOutput{}, err
	}

	publishEvents(ctx, uc.publisher, uc.logger, updated)

	uc.logger.Info("video updated",
		interfaces.String("video_id", updated.ID().String()),
		interfaces.String("title", updated.Title()))

	return UpdateVideoOutput{ID: updated.ID().String()}, nil
}

// update stores each present media payload and persists. No compensation
// here: only creation clears storage on failure.
func (uc *UpdateVideoUseCase) update(ctx context.Context, cmd UpdateVideoCommand, aVideo *video.Video) (*video.Video, error) {
	anID := aVideo.ID()

	if cmd.Video != nil {
		media, err := uc.mediaGateway.StoreAudioVideo(ctx, anID, video.NewVideoResource(*cmd.Video, video.MediaTypeVideo))
		if err != nil {
			return nil, uc.internalError(anID, err)
		}
		aVideo.UpdateVideoMedia(media)
	}
	if cmd.Trailer != nil {
		media, err := uc.mediaGateway.StoreAudioVideo(ctx, anID, video.NewVideoResource(*cmd.Trailer, video.MediaTypeTrailer))
		if err != nil {
			return nil, uc.internalError(anID, err)
		}
		aVideo.UpdateTrailerMedia(media)
	}
	if cmd.Banner != nil {
		media, err := uc.mediaGateway.StoreImage(ctx, anID, video.NewVideoResource(*cmd.Banner, video.MediaTypeBanner))
		if err != nil {
			return nil, uc.internalError(anID, err)
		}
		aVideo.UpdateBannerMedia(media)
	}
	if cmd.Thumbnail != nil {
		media, err := uc.mediaGateway.StoreImage(ctx, anID, video.NewVideoResource(*cmd.Thumbnail, video.MediaTypeThumbnail))
		if err != nil {
			return nil, uc.internalError(anID, err)
		}
		aVideo.UpdateThumbnailMedia(media)
	}
	if cmd.ThumbnailHalf != nil {
		media, err := uc.mediaGateway.StoreImage(ctx, anID, video.NewVideoResource(*cmd.ThumbnailHalf, video.MediaTypeThumbnailHalf))
		if err != nil {
			return nil, uc.internalError(anID, err)
		}
		aVideo.UpdateThumbnailHalfMedia(media)
	}

	updated, err := uc.videoGateway.Update(ctx, aVideo)
	if err != nil {
		return nil, uc.internalError(anID, err)
	}

	return updated, nil
}

func (uc *UpdateVideoUseCase) internalError(anID video.ID, err error) error {
	return errors.Internal(
		fmt.Sprintf("An error occurred while updating video [VideoID: %s]", anID.String()), err)
}
