package video

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reelstack/catalog/internal/domain/video"
	apperrors "github.com/reelstack/catalog/pkg/errors"
	"github.com/reelstack/catalog/pkg/logger"
)

func videoWithMainMedia() (*video.Video, video.AudioVideoMedia) {
	aVideo := storedVideo()
	media := video.NewAudioVideoMedia("abc", "video.mp4", "raw/video")
	aVideo.UpdateVideoMedia(media)
	aVideo.TakeEvents()
	return aVideo, media
}

func TestUpdateMediaStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed Sets Encoded Path On The Video Slot", func(t *testing.T) {
		videos := new(mockVideoGateway)
		useCase := NewUpdateMediaStatusUseCase(videos, logger.NewNoop())
		aVideo, media := videoWithMainMedia()

		videos.On("FindByID", ctx, aVideo.ID()).Return(aVideo, nil)
		videos.On("Update", ctx, mock.AnythingOfType("*video.Video")).Return(nil, nil)

		err := useCase.Execute(ctx, UpdateMediaStatusCommand{
			Status:   video.MediaStatusCompleted,
			VideoID:  aVideo.ID().String(),
			MediaID:  media.MediaID(),
			Folder:   "encoded",
			Filename: "video.mp4",
		})

		require.NoError(t, err)
		got, ok := aVideo.Video()
		require.True(t, ok)
		assert.Equal(t, video.MediaStatusCompleted, got.Status())
		assert.Equal(t, "encoded/video.mp4", got.EncodedLocation())
		videos.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("Processing Moves The Slot Without Encoded Path", func(t *testing.T) {
		videos := new(mockVideoGateway)
		useCase := NewUpdateMediaStatusUseCase(videos, logger.NewNoop())
		aVideo, media := videoWithMainMedia()

		videos.On("FindByID", ctx, aVideo.ID()).Return(aVideo, nil)
		videos.On("Update", ctx, mock.AnythingOfType("*video.Video")).Return(nil, nil)

		err := useCase.Execute(ctx, UpdateMediaStatusCommand{
			Status:  video.MediaStatusProcessing,
			VideoID: aVideo.ID().String(),
			MediaID: media.MediaID(),
		})

		require.NoError(t, err)
		got, _ := aVideo.Video()
		assert.Equal(t, video.MediaStatusProcessing, got.Status())
		assert.Empty(t, got.EncodedLocation())
	})

	t.Run("Matches The Trailer Slot By Media Id", func(t *testing.T) {
		videos := new(mockVideoGateway)
		useCase := NewUpdateMediaStatusUseCase(videos, logger.NewNoop())
		aVideo := storedVideo()
		trailer := video.NewAudioVideoMedia("abc", "trailer.mp4", "raw/trailer")
		aVideo.UpdateTrailerMedia(trailer)
		aVideo.TakeEvents()

		videos.On("FindByID", ctx, aVideo.ID()).Return(aVideo, nil)
		videos.On("Update", ctx, mock.AnythingOfType("*video.Video")).Return(nil, nil)

		err := useCase.Execute(ctx, UpdateMediaStatusCommand{
			Status:   video.MediaStatusCompleted,
			VideoID:  aVideo.ID().String(),
			MediaID:  trailer.MediaID(),
			Folder:   "encoded",
			Filename: "trailer.mp4",
		})

		require.NoError(t, err)
		got, ok := aVideo.Trailer()
		require.True(t, ok)
		assert.Equal(t, video.MediaStatusCompleted, got.Status())
	})

	t.Run("Unknown Media Id Is A NoOp", func(t *testing.T) {
		videos := new(mockVideoGateway)
		useCase := NewUpdateMediaStatusUseCase(videos, logger.NewNoop())
		aVideo, _ := videoWithMainMedia()

		videos.On("FindByID", ctx, aVideo.ID()).Return(aVideo, nil)

		err := useCase.Execute(ctx, UpdateMediaStatusCommand{
			Status:   video.MediaStatusCompleted,
			VideoID:  aVideo.ID().String(),
			MediaID:  "some-other-media",
			Folder:   "encoded",
			Filename: "video.mp4",
		})

		require.NoError(t, err)
		videos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		got, _ := aVideo.Video()
		assert.Equal(t, video.MediaStatusPending, got.Status())
	})

	t.Run("Unknown Video Is NotFound", func(t *testing.T) {
		videos := new(mockVideoGateway)
		useCase := NewUpdateMediaStatusUseCase(videos, logger.NewNoop())

		videos.On("FindByID", ctx, mock.Anything).Return(nil, nil)

		err := useCase.Execute(ctx, UpdateMediaStatusCommand{
			Status:  video.MediaStatusCompleted,
			VideoID: "missing",
			MediaID: "m",
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
