package video

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelstack/catalog/internal/domain/video"
	apperrors "github.com/reelstack/catalog/pkg/errors"
)

func TestGetMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns The Stored Payload", func(t *testing.T) {
		media := new(mockMediaGateway)
		useCase := NewGetMediaUseCase(media)
		anID := video.IDFrom("some-video")

		media.On("GetResource", ctx, anID, video.MediaTypeVideo).
			Return(video.Resource{
				Content:     []byte("bytes"),
				ContentType: "video/mp4",
				Name:        "video.mp4",
			}, true, nil)

		out, err := useCase.Execute(ctx, GetMediaCommand{VideoID: "some-video", MediaType: "video"})

		require.NoError(t, err)
		assert.Equal(t, []byte("bytes"), out.Content)
		assert.Equal(t, "video/mp4", out.ContentType)
		assert.Equal(t, "video.mp4", out.Name)
	})

	t.Run("Unknown Media Type Is NotFound", func(t *testing.T) {
		media := new(mockMediaGateway)
		useCase := NewGetMediaUseCase(media)

		_, err := useCase.Execute(ctx, GetMediaCommand{VideoID: "v", MediaType: "poster"})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Contains(t, err.Error(), "Media type poster doesn't exists")
		media.AssertNotCalled(t, "GetResource")
	})

	t.Run("Missing Resource Is NotFound", func(t *testing.T) {
		media := new(mockMediaGateway)
		useCase := NewGetMediaUseCase(media)
		anID := video.IDFrom("some-video")

		media.On("GetResource", ctx, anID, video.MediaTypeTrailer).
			Return(video.Resource{}, false, nil)

		_, err := useCase.Execute(ctx, GetMediaCommand{VideoID: "some-video", MediaType: "TRAILER"})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Contains(t, err.Error(), "Resource TRAILER not found for video some-video")
	})
}
