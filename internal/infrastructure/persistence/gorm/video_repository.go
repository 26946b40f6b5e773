package gorm

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/reelstack/catalog/internal/domain/pagination"
	"github.com/reelstack/catalog/internal/domain/video"
)

var sortableColumns = map[string]string{
	"title":       "title",
	"launched_at": "launched_at",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// VideoRepository implements video.Gateway on GORM.
type VideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new GORM video repository.
func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create persists a new aggregate together with its join rows. The same
// aggregate pointer is returned so buffered events survive the call.
func (r *VideoRepository) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := NewVideoModel(v)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// Update rewrites the aggregate row and replaces every join row. Runs in a
// transaction so a partial relation rewrite never becomes visible.
func (r *VideoRepository) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := NewVideoModel(v)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteJoinRows(tx, model.ID); err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// FindByID retrieves an aggregate by id, (nil, nil) when absent.
func (r *VideoRepository) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	var model VideoModel
	result := r.db.WithContext(ctx).
		Preload("Categories", orderByPosition).
		Preload("Genres", orderByPosition).
		Preload("CastMembers", orderByPosition).
		First(&model, "id = ?", id.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return model.ToDomain(), nil
}

// DeleteByID removes an aggregate and its join rows. Deleting an absent id is
// a no-op.
func (r *VideoRepository) DeleteByID(ctx context.Context, id video.ID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteJoinRows(tx, id.String()); err != nil {
			return err
		}
		return tx.Delete(&VideoModel{}, "id = ?", id.String()).Error
	})
}

// FindAll returns one page of previews matching the query, ordered by the
// requested sortable column.
func (r *VideoRepository) FindAll(ctx context.Context, query video.SearchQuery) (pagination.Page[video.Preview], error) {
	page := query.Page
	if page < defaultPage {
		page = defaultPage
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}

	var total int64
	counting := r.applyFilters(r.db.WithContext(ctx).Model(&VideoModel{}), query)
	if err := counting.Distinct("videos.id").Count(&total).Error; err != nil {
		return pagination.Page[video.Preview]{}, err
	}

	var models []VideoModel
	err := r.applyFilters(r.db.WithContext(ctx).Model(&VideoModel{}), query).
		Distinct("videos.id", "videos.title", "videos.description", "videos.created_at", "videos.updated_at").
		Order(orderClause(query.Sort, query.Direction)).
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&models).Error
	if err != nil {
		return pagination.Page[video.Preview]{}, err
	}

	previews := make([]video.Preview, len(models))
	for i, model := range models {
		previews[i] = video.Preview{
			ID:          video.IDFrom(model.ID),
			Title:       model.Title,
			Description: model.Description,
			CreatedAt:   model.CreatedAt,
			UpdatedAt:   model.UpdatedAt,
		}
	}

	return pagination.Page[video.Preview]{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		Items:       previews,
	}, nil
}

func (r *VideoRepository) applyFilters(tx *gorm.DB, query video.SearchQuery) *gorm.DB {
	if term := strings.TrimSpace(query.Term); term != "" {
		tx = tx.Where("LOWER(videos.title) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	if len(query.Categories) > 0 {
		tx = tx.Joins("JOIN videos_categories vc ON vc.video_id = videos.id").
			Where("vc.category_id IN ?", toStrings(query.Categories))
	}
	if len(query.Genres) > 0 {
		tx = tx.Joins("JOIN videos_genres vg ON vg.video_id = videos.id").
			Where("vg.genre_id IN ?", toStrings(query.Genres))
	}
	if len(query.CastMembers) > 0 {
		tx = tx.Joins("JOIN videos_cast_members vm ON vm.video_id = videos.id").
			Where("vm.cast_member_id IN ?", toStrings(query.CastMembers))
	}
	return tx
}

func deleteJoinRows(tx *gorm.DB, videoID string) error {
	for _, join := range []interface{}{
		&VideoCategoryModel{},
		&VideoGenreModel{},
		&VideoCastMemberModel{},
	} {
		if err := tx.Where("video_id = ?", videoID).Delete(join).Error; err != nil {
			return err
		}
	}
	return nil
}

func orderByPosition(tx *gorm.DB) *gorm.DB {
	return tx.Order("position ASC")
}

func orderClause(sort, direction string) string {
	column, ok := sortableColumns[strings.ToLower(sort)]
	if !ok {
		column = "title"
	}
	if strings.EqualFold(direction, "desc") {
		return column + " DESC"
	}
	return column + " ASC"
}

func toStrings[T ~string](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
