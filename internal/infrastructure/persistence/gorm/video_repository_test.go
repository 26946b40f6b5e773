package gorm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormdb "gorm.io/gorm"

	"github.com/reelstack/catalog/internal/domain/castmember"
	"github.com/reelstack/catalog/internal/domain/category"
	"github.com/reelstack/catalog/internal/domain/genre"
	"github.com/reelstack/catalog/internal/domain/pagination"
	"github.com/reelstack/catalog/internal/domain/video"
)

func seedCategory(t *testing.T, db *gormdb.DB, name string) category.ID {
	t.Helper()
	aCategory := category.NewCategory(name, "Videos about "+name)
	require.NoError(t, db.Create(NewCategoryModel(aCategory)).Error)
	return aCategory.ID
}

func seedGenre(t *testing.T, db *gormdb.DB, name string) genre.ID {
	t.Helper()
	aGenre := genre.NewGenre(name)
	require.NoError(t, db.Create(NewGenreModel(aGenre)).Error)
	return aGenre.ID
}

func seedCastMember(t *testing.T, db *gormdb.DB, name string) castmember.ID {
	t.Helper()
	aMember := castmember.NewCastMember(name, castmember.TypeActor)
	require.NoError(t, db.Create(NewCastMemberModel(aMember)).Error)
	return aMember.ID
}

func newPersistedVideo(t *testing.T, db *gormdb.DB, repo *VideoRepository, title string) *video.Video {
	t.Helper()
	aVideo := video.NewVideo(title, "Description for "+title, 2022, 90, video.RatingFree,
		false, true, nil, nil, nil)
	_, err := repo.Create(context.Background(), aVideo)
	require.NoError(t, err)
	return aVideo
}

func TestVideoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create And FindByID Round Trip", func(t *testing.T) {
		db := NewTestDB(t)
		repo := NewVideoRepository(db)
		categoryID := seedCategory(t, db, "c1")
		genreID := seedGenre(t, db, "g1")
		memberID := seedCastMember(t, db, "m1")

		aVideo := video.NewVideo("System Design", "Deep dive.", 2022, 120, video.RatingAge12,
			true, false,
			[]category.ID{categoryID},
			[]genre.ID{genreID},
			[]castmember.ID{memberID},
		)
		aVideo.UpdateBannerMedia(video.NewImageMedia("abc", "banner.png", "loc/BANNER"))
		aVideo.UpdateVideoMedia(video.NewAudioVideoMedia("def", "video.mp4", "raw/VIDEO"))
		aVideo.TakeEvents()

		_, err := repo.Create(ctx, aVideo)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, aVideo.ID())
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, aVideo.ID(), got.ID())
		assert.Equal(t, "System Design", got.Title())
		assert.Equal(t, video.RatingAge12, got.Rating())
		assert.True(t, got.Opened())
		assert.False(t, got.Published())
		assert.Equal(t, []category.ID{categoryID}, got.Categories())
		assert.Equal(t, []genre.ID{genreID}, got.Genres())
		assert.Equal(t, []castmember.ID{memberID}, got.CastMembers())

		banner, ok := got.Banner()
		require.True(t, ok)
		assert.Equal(t, "abc", banner.Checksum())

		main, ok := got.Video()
		require.True(t, ok)
		assert.Equal(t, video.MediaStatusPending, main.Status())
		assert.Equal(t, "raw/VIDEO", main.RawLocation())

		_, ok = got.Trailer()
		assert.False(t, ok)
	})

	t.Run("FindByID Misses As Nil Nil", func(t *testing.T) {
		db := NewTestDB(t)
		repo := NewVideoRepository(db)

		got, err := repo.FindByID(ctx, video.NewID())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Update Replaces Fields And Relations", func(t *testing.T) {
		db := NewTestDB(t)
		repo := NewVideoRepository(db)
		first := seedCategory(t, db, "c1")
		second := seedCategory(t, db, "c2")

		aVideo := video.NewVideo("Title", "Description.", 2022, 90, video.RatingFree,
			false, false, []category.ID{first}, nil, nil)
		_, err := repo.Create(ctx, aVideo)
		require.NoError(t, err)

		aVideo.Update("New Title", "New description.", 2023, 60, video.RatingAge16,
			true, true, []category.ID{second}, nil, nil)
		_, err = repo.Update(ctx, aVideo)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, aVideo.ID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "New Title", got.Title())
		assert.Equal(t, video.RatingAge16, got.Rating())
		assert.Equal(t, []category.ID{second}, got.Categories())
	})

	t.Run("Update Persists Media Status Transitions", func(t *testing.T) {
		db := NewTestDB(t)
		repo := NewVideoRepository(db)

		aVideo := newPersistedVideo(t, db, repo, "Encodable")
		media := video.NewAudioVideoMedia("abc", "video.mp4", "raw/VIDEO")
		aVideo.UpdateVideoMedia(media)
		aVideo.TakeEvents()
		_, err := repo.Update(ctx, aVideo)
		require.NoError(t, err)

		aVideo.Completed(video.MediaTypeVideo, "encoded/video.mp4")
		_, err = repo.Update(ctx, aVideo)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, aVideo.ID())
		require.NoError(t, err)
		main, ok := got.Video()
		require.True(t, ok)
		assert.Equal(t, video.MediaStatusCompleted, main.Status())
		assert.Equal(t, "encoded/video.mp4", main.EncodedLocation())
		assert.Equal(t, media.MediaID(), main.MediaID())
	})

	t.Run("DeleteByID Is Idempotent", func(t *testing.T) {
		db := NewTestDB(t)
		repo := NewVideoRepository(db)

		aVideo := newPersistedVideo(t, db, repo, "Disposable")

		require.NoError(t, repo.DeleteByID(ctx, aVideo.ID()))
		got, err := repo.FindByID(ctx, aVideo.ID())
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, repo.DeleteByID(ctx, aVideo.ID()))
	})

	t.Run("FindAll Paginates And Filters By Term", func(t *testing.T) {
		db := NewTestDB(t)
		repo := NewVideoRepository(db)

		newPersistedVideo(t, db, repo, "Algorithms 101")
		newPersistedVideo(t, db, repo, "Advanced Algorithms")
		newPersistedVideo(t, db, repo, "Cooking Basics")

		page, err := repo.FindAll(ctx, video.SearchQuery{
			SearchQuery: pagination.SearchQuery{Page: 1, PerPage: 10, Term: "algorithms"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Advanced Algorithms", page.Items[0].Title)
		assert.Equal(t, "Algorithms 101", page.Items[1].Title)

		small, err := repo.FindAll(ctx, video.SearchQuery{
			SearchQuery: pagination.SearchQuery{Page: 2, PerPage: 1, Term: "algorithms"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), small.Total)
		require.Len(t, small.Items, 1)
		assert.Equal(t, "Algorithms 101", small.Items[0].Title)
	})

	t.Run("FindAll Filters By Relation Ids", func(t *testing.T) {
		db := NewTestDB(t)
		repo := NewVideoRepository(db)
		scienceID := seedCategory(t, db, "c-science")
		artsID := seedCategory(t, db, "c-arts")

		science := video.NewVideo("Physics", "Description.", 2022, 60, video.RatingFree,
			false, false, []category.ID{scienceID}, nil, nil)
		arts := video.NewVideo("Painting", "Description.", 2022, 60, video.RatingFree,
			false, false, []category.ID{artsID}, nil, nil)
		_, err := repo.Create(ctx, science)
		require.NoError(t, err)
		_, err = repo.Create(ctx, arts)
		require.NoError(t, err)

		page, err := repo.FindAll(ctx, video.SearchQuery{
			SearchQuery: pagination.SearchQuery{Page: 1, PerPage: 10},
			Categories:  []category.ID{scienceID},
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Physics", page.Items[0].Title)
	})

	t.Run("FindAll Sorts Descending", func(t *testing.T) {
		db := NewTestDB(t)
		repo := NewVideoRepository(db)

		newPersistedVideo(t, db, repo, "Alpha")
		newPersistedVideo(t, db, repo, "Beta")

		page, err := repo.FindAll(ctx, video.SearchQuery{
			SearchQuery: pagination.SearchQuery{Page: 1, PerPage: 10, Sort: "title", Direction: "desc"},
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "Beta", page.Items[0].Title)
	})
}

func TestCatalogModels(t *testing.T) {
	t.Run("Category Round Trip", func(t *testing.T) {
		db := NewTestDB(t)
		aCategory := category.NewCategory("Documentaries", "Non-fiction videos")
		require.NoError(t, db.Create(NewCategoryModel(aCategory)).Error)

		var model CategoryModel
		require.NoError(t, db.First(&model, "id = ?", aCategory.ID.String()).Error)

		got := model.ToDomain()
		assert.Equal(t, aCategory.ID, got.ID)
		assert.Equal(t, "Documentaries", got.Name)
		assert.Equal(t, "Non-fiction videos", got.Description)
		assert.True(t, got.Active)
	})

	t.Run("Genre Round Trip", func(t *testing.T) {
		db := NewTestDB(t)
		aGenre := genre.NewGenre("Horror")
		require.NoError(t, db.Create(NewGenreModel(aGenre)).Error)

		var model GenreModel
		require.NoError(t, db.First(&model, "id = ?", aGenre.ID.String()).Error)

		got := model.ToDomain()
		assert.Equal(t, aGenre.ID, got.ID)
		assert.Equal(t, "Horror", got.Name)
		assert.True(t, got.Active)
	})

	t.Run("CastMember Round Trip Keeps Type", func(t *testing.T) {
		db := NewTestDB(t)
		aMember := castmember.NewCastMember("Ana Souza", castmember.TypeDirector)
		require.NoError(t, db.Create(NewCastMemberModel(aMember)).Error)

		var model CastMemberModel
		require.NoError(t, db.First(&model, "id = ?", aMember.ID.String()).Error)

		got := model.ToDomain()
		assert.Equal(t, aMember.ID, got.ID)
		assert.Equal(t, "Ana Souza", got.Name)
		assert.Equal(t, castmember.TypeDirector, got.Type)
	})
}

func TestCatalogGateways(t *testing.T) {
	ctx := context.Background()

	t.Run("ExistsByIDs Returns The Present Subset", func(t *testing.T) {
		db := NewTestDB(t)
		gateway := NewCategoryGateway(db)
		present := seedCategory(t, db, "c1")

		found, err := gateway.ExistsByIDs(ctx, []category.ID{present, "missing"})

		require.NoError(t, err)
		assert.Equal(t, []category.ID{present}, found)
	})

	t.Run("Empty Request Returns Empty", func(t *testing.T) {
		db := NewTestDB(t)
		gateway := NewGenreGateway(db)

		found, err := gateway.ExistsByIDs(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("CastMember Lookup", func(t *testing.T) {
		db := NewTestDB(t)
		gateway := NewCastMemberGateway(db)
		present := seedCastMember(t, db, "m1")

		found, err := gateway.ExistsByIDs(ctx, []castmember.ID{"ghost", present})

		require.NoError(t, err)
		assert.Equal(t, []castmember.ID{present}, found)
	})
}
