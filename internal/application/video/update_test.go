package video

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reelstack/catalog/internal/domain/castmember"
	"github.com/reelstack/catalog/internal/domain/category"
	"github.com/reelstack/catalog/internal/domain/genre"
	"github.com/reelstack/catalog/internal/domain/validation"
	"github.com/reelstack/catalog/internal/domain/video"
	apperrors "github.com/reelstack/catalog/pkg/errors"
	"github.com/reelstack/catalog/pkg/logger"
)

type updateFixture struct {
	categories  *mockCategoryGateway
	genres      *mockGenreGateway
	castMembers *mockCastMemberGateway
	videos      *mockVideoGateway
	media       *mockMediaGateway
	publisher   *mockPublisher
	useCase     *UpdateVideoUseCase
}

func newUpdateFixture() *updateFixture {
	f := &updateFixture{
		categories:  new(mockCategoryGateway),
		genres:      new(mockGenreGateway),
		castMembers: new(mockCastMemberGateway),
		videos:      new(mockVideoGateway),
		media:       new(mockMediaGateway),
		publisher:   new(mockPublisher),
	}
	f.useCase = NewUpdateVideoUseCase(
		f.categories, f.genres, f.castMembers,
		f.videos, f.media, f.publisher, logger.NewNoop(),
	)
	return f
}

func (f *updateFixture) allIDsExist() {
	f.categories.On("ExistsByIDs", mock.Anything, mock.Anything).
		Return([]category.ID{"c1"}, nil)
	f.genres.On("ExistsByIDs", mock.Anything, mock.Anything).
		Return([]genre.ID{"g1"}, nil)
	f.castMembers.On("ExistsByIDs", mock.Anything, mock.Anything).
		Return([]castmember.ID{"m1"}, nil)
}

func storedVideo() *video.Video {
	return video.NewVideo("Old Title", "Old description.", 2020, 60, video.RatingFree,
		false, false, nil, nil, nil)
}

func validUpdateCommand(id string) UpdateVideoCommand {
	return UpdateVideoCommand{
		ID:          id,
		Title:       "New Title",
		Description: "New description.",
		LaunchedAt:  2023,
		Duration:    90,
		Rating:      "12",
		Opened:      true,
		Published:   false,
		Categories:  []string{"c1"},
		Genres:      []string{"g1"},
		CastMembers: []string{"m1"},
	}
}

func TestUpdateVideo(t *testing.T) {
	ctx := context.Background()

	t.Run("Updates A Stored Video", func(t *testing.T) {
		f := newUpdateFixture()
		f.allIDsExist()
		aVideo := storedVideo()

		f.videos.On("FindByID", ctx, aVideo.ID()).Return(aVideo, nil)
		f.videos.On("Update", ctx, mock.AnythingOfType("*video.Video")).Return(nil, nil)

		out, err := f.useCase.Execute(ctx, validUpdateCommand(aVideo.ID().String()))

		require.NoError(t, err)
		assert.Equal(t, aVideo.ID().String(), out.ID)
		assert.Equal(t, "New Title", aVideo.Title())
		assert.Equal(t, video.RatingAge12, aVideo.Rating())
		f.videos.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("Unknown Video Is NotFound", func(t *testing.T) {
		f := newUpdateFixture()
		f.videos.On("FindByID", ctx, mock.Anything).Return(nil, nil)

		cmd := validUpdateCommand("missing-id")
		_, err := f.useCase.Execute(ctx, cmd)

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Contains(t, err.Error(), "Video with ID missing-id was not found")
		f.categories.AssertNotCalled(t, "ExistsByIDs", mock.Anything, mock.Anything)
	})

	t.Run("Missing Genres Reported", func(t *testing.T) {
		f := newUpdateFixture()
		aVideo := storedVideo()
		f.videos.On("FindByID", ctx, aVideo.ID()).Return(aVideo, nil)
		f.categories.On("ExistsByIDs", mock.Anything, mock.Anything).
			Return([]category.ID{"c1"}, nil)
		f.genres.On("ExistsByIDs", mock.Anything, mock.Anything).
			Return([]genre.ID{}, nil)
		f.castMembers.On("ExistsByIDs", mock.Anything, mock.Anything).
			Return([]castmember.ID{"m1"}, nil)

		_, err := f.useCase.Execute(ctx, validUpdateCommand(aVideo.ID().String()))

		var notificationErr *validation.NotificationError
		require.ErrorAs(t, err, &notificationErr)
		assert.Equal(t, "Could not update Aggregate Video", notificationErr.Message)
		require.Len(t, notificationErr.Errors(), 1)
		assert.Equal(t, "Some genres could not be found: g1", notificationErr.Errors()[0].Message)
		f.videos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Persistence Failure Does Not Clear Media", func(t *testing.T) {
		f := newUpdateFixture()
		f.allIDsExist()
		aVideo := storedVideo()

		f.videos.On("FindByID", ctx, aVideo.ID()).Return(aVideo, nil)
		f.videos.On("Update", ctx, mock.AnythingOfType("*video.Video")).
			Return(nil, errors.New("db down"))

		_, err := f.useCase.Execute(ctx, validUpdateCommand(aVideo.ID().String()))

		require.Error(t, err)
		assert.True(t, apperrors.IsInternal(err))
		assert.Contains(t, err.Error(), "An error occurred while updating video [VideoID:")
		f.media.AssertNotCalled(t, "ClearResources", mock.Anything, mock.Anything)
	})

	t.Run("New Video Media Publishes After Persistence", func(t *testing.T) {
		f := newUpdateFixture()
		f.allIDsExist()
		aVideo := storedVideo()

		cmd := validUpdateCommand(aVideo.ID().String())
		cmd.Video = &video.Resource{Content: []byte("bytes"), Checksum: "abc", Name: "video.mp4"}

		f.videos.On("FindByID", ctx, aVideo.ID()).Return(aVideo, nil)
		f.media.On("StoreAudioVideo", ctx, aVideo.ID(), mock.Anything).
			Return(video.NewAudioVideoMedia("abc", "video.mp4", "raw/video"), nil)
		f.videos.On("Update", ctx, mock.AnythingOfType("*video.Video")).Return(nil, nil)
		f.publisher.On("Publish", ctx, mock.AnythingOfType("video.MediaCreated")).Return(nil)

		_, err := f.useCase.Execute(ctx, cmd)

		require.NoError(t, err)
		f.publisher.AssertNumberOfCalls(t, "Publish", 1)
	})
}
