package container

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appvideo "github.com/reelstack/catalog/internal/application/video"
	"github.com/reelstack/catalog/internal/config"
	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/internal/infrastructure/events/nats"
	gormrepo "github.com/reelstack/catalog/internal/infrastructure/persistence/gorm"
	"github.com/reelstack/catalog/internal/infrastructure/storage"
	"github.com/reelstack/catalog/pkg/interfaces"
)

// CatalogContainer holds all dependencies for the catalog service.
type CatalogContainer struct {
	Config     *config.Config
	DB         *gorm.DB
	NATSClient *nats.Client

	CreateVideo       *appvideo.CreateVideoUseCase
	UpdateVideo       *appvideo.UpdateVideoUseCase
	DeleteVideo       *appvideo.DeleteVideoUseCase
	GetVideoByID      *appvideo.GetVideoByIDUseCase
	ListVideos        *appvideo.ListVideosUseCase
	UploadMedia       *appvideo.UploadMediaUseCase
	GetMedia          *appvideo.GetMediaUseCase
	UpdateMediaStatus *appvideo.UpdateMediaStatusUseCase

	EncodedConsumer *nats.EncodedConsumer
}

// InitializeCatalogService wires the catalog service dependencies by hand:
// database, NATS, media storage, then the use cases on top.
func InitializeCatalogService(
	ctx context.Context,
	cfg *config.Config,
	zapLogger *zap.Logger,
	log interfaces.Logger,
) (*CatalogContainer, func(), error) {
	db, dbCleanup, err := gormrepo.NewDB(cfg, zapLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	natsClient, natsCleanup, err := nats.NewClient(cfg, zapLogger)
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to connect NATS: %w", err)
	}

	cleanup := func() {
		natsCleanup()
		dbCleanup()
	}

	mediaGateway, err := newMediaGateway(ctx, cfg, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	videoGateway := gormrepo.NewVideoRepository(db)
	categoryGateway := gormrepo.NewCategoryGateway(db)
	genreGateway := gormrepo.NewGenreGateway(db)
	castMemberGateway := gormrepo.NewCastMemberGateway(db)
	publisher := nats.NewPublisher(natsClient, zapLogger)

	updateMediaStatus := appvideo.NewUpdateMediaStatusUseCase(videoGateway, log)

	c := &CatalogContainer{
		Config:     cfg,
		DB:         db,
		NATSClient: natsClient,

		CreateVideo: appvideo.NewCreateVideoUseCase(
			categoryGateway, genreGateway, castMemberGateway,
			videoGateway, mediaGateway, publisher, log,
		),
		UpdateVideo: appvideo.NewUpdateVideoUseCase(
			categoryGateway, genreGateway, castMemberGateway,
			videoGateway, mediaGateway, publisher, log,
		),
		DeleteVideo:       appvideo.NewDeleteVideoUseCase(videoGateway, mediaGateway, log),
		GetVideoByID:      appvideo.NewGetVideoByIDUseCase(videoGateway),
		ListVideos:        appvideo.NewListVideosUseCase(videoGateway),
		UploadMedia:       appvideo.NewUploadMediaUseCase(videoGateway, mediaGateway, publisher, log),
		GetMedia:          appvideo.NewGetMediaUseCase(mediaGateway),
		UpdateMediaStatus: updateMediaStatus,

		EncodedConsumer: nats.NewEncodedConsumer(natsClient, updateMediaStatus, zapLogger),
	}

	return c, cleanup, nil
}

func newMediaGateway(ctx context.Context, cfg *config.Config, log interfaces.Logger) (video.MediaResourceGateway, error) {
	switch cfg.Storage.Type {
	case "memory":
		return storage.NewMemoryMediaGateway(), nil
	case "s3":
		return storage.NewS3MediaGateway(ctx, cfg.Storage.Bucket, cfg.Storage.Prefix, cfg.Storage.Region, log)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}
