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

// CreateVideoCommand carries the raw inputs for video creation: scalar
// fields, foreign id sets as plain strings, and up to five optional media
// payloads.
type CreateVideoCommand struct {
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

// CreateVideoOutput identifies the created aggregate.
type CreateVideoOutput struct {
	ID string
}

// CreateVideoUseCase orchestrates validation, cross-aggregate existence
// checks, media storage, persistence and event publication for new videos.
type CreateVideoUseCase struct {
	categoryGateway   category.Gateway
	genreGateway      genre.Gateway
	castMemberGateway castmember.Gateway
	videoGateway      video.Gateway
	mediaGateway      video.MediaResourceGateway
	publisher         events.Publisher
	logger            interfaces.Logger
}

// NewCreateVideoUseCase wires the create use case.
func NewCreateVideoUseCase(
	categoryGateway category.Gateway,
	genreGateway genre.Gateway,
	castMemberGateway castmember.Gateway,
	videoGateway video.Gateway,
	mediaGateway video.MediaResourceGateway,
	publisher events.Publisher,
	logger interfaces.Logger,
) *CreateVideoUseCase {
	return &CreateVideoUseCase{
		categoryGateway:   categoryGateway,
		genreGateway:      genreGateway,
		castMemberGateway: castMemberGateway,
		videoGateway:      videoGateway,
		mediaGateway:      mediaGateway,
		publisher:         publisher,
		logger:            logger,
	}
}

// Execute validates the command and, only when everything checks out, stores
// media and persists the aggregate. Validation failures are aggregated into a
// single NotificationError before any media is uploaded.
func (uc *CreateVideoUseCase) Execute(ctx context.Context, cmd CreateVideoCommand) (CreateVideoOutput, error) {
	// An unparseable rating is treated exactly like a missing one; the
	// validator reports both as "'rating' should not be null".
	rating, _ := video.ParseRating(cmd.Rating)
	categories := toIdentifiers(cmd.Categories, category.IDFrom)
	genres := toIdentifiers(cmd.Genres, genre.IDFrom)
	members := toIdentifiers(cmd.CastMembers, castmember.IDFrom)

	notification := validation.NewNotification()

	categoriesCheck, err := checkAggregateExists(ctx, "categories", categories, uc.categoryGateway.ExistsByIDs)
	if err != nil {
		return CreateVideoOutput{}, err
	}
	notification.AppendHandler(categoriesCheck)

	genresCheck, err := checkAggregateExists(ctx, "genres", genres, uc.genreGateway.ExistsByIDs)
	if err != nil {
		return CreateVideoOutput{}, err
	}
	notification.AppendHandler(genresCheck)

	membersCheck, err := checkAggregateExists(ctx, "cast members", members, uc.castMemberGateway.ExistsByIDs)
	if err != nil {
		return CreateVideoOutput{}, err
	}
	notification.AppendHandler(membersCheck)

	aVideo := video.NewVideo(
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
		return CreateVideoOutput{}, validation.NewNotificationError("Could not create Aggregate Video", notification)
	}

	created, err := uc.create(ctx, cmd, aVideo)
	if err != nil {
		return CreateVideoOutput{}, err
	}

	publishEvents(ctx, uc.publisher, uc.logger, created)

	uc.logger.Info("video created",
		interfaces.String("video_id", created.ID().String()),
		interfaces.String("title", created.Title()))

	return CreateVideoOutput{ID: created.ID().String()}, nil
}

// create stores each present media payload, attaches it to the aggregate and
// persists the result. Any failure triggers the compensation path: everything
// stored for this video id is cleared so no orphaned blobs remain.
func (uc *CreateVideoUseCase) create(ctx context.Context, cmd CreateVideoCommand, aVideo *video.Video) (*video.Video, error) {
	anID := aVideo.ID()

	created, err := uc.storeAndPersist(ctx, cmd, aVideo)
	if err != nil {
		if clearErr := uc.mediaGateway.ClearResources(ctx, anID); clearErr != nil {
			uc.logger.Error("failed to clear resources after create failure",
				interfaces.String("video_id", anID.String()),
				interfaces.Error(clearErr))
		}
		return nil, errors.Internal(
			fmt.Sprintf("An error occurred while creating video [VideoID: %s]", anID.String()), err)
	}

	return created, nil
}

func (uc *CreateVideoUseCase) storeAndPersist(ctx context.Context, cmd CreateVideoCommand, aVideo *video.Video) (*video.Video, error) {
	anID := aVideo.ID()

	if cmd.Video != nil {
		media, err := uc.mediaGateway.StoreAudioVideo(ctx, anID, video.NewVideoResource(*cmd.Video, video.MediaTypeVideo))
		if err != nil {
			return nil, err
		}
		aVideo.UpdateVideoMedia(media)
	}
	if cmd.Trailer != nil {
		media, err := uc.mediaGateway.StoreAudioVideo(ctx, anID, video.NewVideoResource(*cmd.Trailer, video.MediaTypeTrailer))
		if err != nil {
			return nil, err
		}
		aVideo.UpdateTrailerMedia(media)
	}
	if cmd.Banner != nil {
		media, err := uc.mediaGateway.StoreImage(ctx, anID, video.NewVideoResource(*cmd.Banner, video.MediaTypeBanner))
		if err != nil {
			return nil, err
		}
		aVideo.UpdateBannerMedia(media)
	}
	if cmd.Thumbnail != nil {
		media, err := uc.mediaGateway.StoreImage(ctx, anID, video.NewVideoResource(*cmd.Thumbnail, video.MediaTypeThumbnail))
		if err != nil {
			return nil, err
		}
		aVideo.UpdateThumbnailMedia(media)
	}
	if cmd.ThumbnailHalf != nil {
		media, err := uc.mediaGateway.StoreImage(ctx, anID, video.NewVideoResource(*cmd.ThumbnailHalf, video.MediaTypeThumbnailHalf))
		if err != nil {
			return nil, err
		}
		aVideo.UpdateThumbnailHalfMedia(media)
	}

	return uc.videoGateway.Create(ctx, aVideo)
}
