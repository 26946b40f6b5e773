package video

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reelstack/catalog/internal/domain/castmember"
	"github.com/reelstack/catalog/internal/domain/category"
	"github.com/reelstack/catalog/internal/domain/events"
	"github.com/reelstack/catalog/internal/domain/genre"
	"github.com/reelstack/catalog/internal/domain/pagination"
	"github.com/reelstack/catalog/internal/domain/video"
)

type mockVideoGateway struct {
	mock.Mock
}

// Create echoes the persisted aggregate back when the expectation returns
// (nil, nil), matching the real gateway contract.
func (m *mockVideoGateway) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		if args.Error(1) != nil {
			return nil, args.Error(1)
		}
		return v, nil
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *mockVideoGateway) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		if args.Error(1) != nil {
			return nil, args.Error(1)
		}
		return v, nil
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *mockVideoGateway) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *mockVideoGateway) DeleteByID(ctx context.Context, id video.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVideoGateway) FindAll(ctx context.Context, query video.SearchQuery) (pagination.Page[video.Preview], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[video.Preview]), args.Error(1)
}

type mockMediaGateway struct {
	mock.Mock
}

func (m *mockMediaGateway) StoreAudioVideo(ctx context.Context, id video.ID, resource video.VideoResource) (video.AudioVideoMedia, error) {
	args := m.Called(ctx, id, resource)
	return args.Get(0).(video.AudioVideoMedia), args.Error(1)
}

func (m *mockMediaGateway) StoreImage(ctx context.Context, id video.ID, resource video.VideoResource) (video.ImageMedia, error) {
	args := m.Called(ctx, id, resource)
	return args.Get(0).(video.ImageMedia), args.Error(1)
}

func (m *mockMediaGateway) ClearResources(ctx context.Context, id video.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMediaGateway) GetResource(ctx context.Context, id video.ID, mediaType video.MediaType) (video.Resource, bool, error) {
	args := m.Called(ctx, id, mediaType)
	return args.Get(0).(video.Resource), args.Bool(1), args.Error(2)
}

type mockCategoryGateway struct {
	mock.Mock
}

func (m *mockCategoryGateway) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.ID), args.Error(1)
}

type mockGenreGateway struct {
	mock.Mock
}

func (m *mockGenreGateway) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]genre.ID), args.Error(1)
}

type mockCastMemberGateway struct {
	mock.Mock
}

func (m *mockCastMemberGateway) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]castmember.ID), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
