package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/reelstack/catalog/internal/domain/castmember"
	"github.com/reelstack/catalog/internal/domain/category"
	"github.com/reelstack/catalog/internal/domain/genre"
)

// CategoryGateway implements category.Gateway on GORM.
type CategoryGateway struct {
	db *gorm.DB
}

// NewCategoryGateway creates a new GORM category gateway.
func NewCategoryGateway(db *gorm.DB) *CategoryGateway {
	return &CategoryGateway{db: db}
}

// ExistsByIDs returns the subset of the requested category ids present in
// the database.
func (g *CategoryGateway) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	found, err := pluckExisting(ctx, g.db, &CategoryModel{}, toStrings(ids))
	if err != nil {
		return nil, err
	}
	out := make([]category.ID, len(found))
	for i, id := range found {
		out[i] = category.IDFrom(id)
	}
	return out, nil
}

// GenreGateway implements genre.Gateway on GORM.
type GenreGateway struct {
	db *gorm.DB
}

// NewGenreGateway creates a new GORM genre gateway.
func NewGenreGateway(db *gorm.DB) *GenreGateway {
	return &GenreGateway{db: db}
}

// ExistsByIDs returns the subset of the requested genre ids present in the
// database.
func (g *GenreGateway) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	found, err := pluckExisting(ctx, g.db, &GenreModel{}, toStrings(ids))
	if err != nil {
		return nil, err
	}
	out := make([]genre.ID, len(found))
	for i, id := range found {
		out[i] = genre.IDFrom(id)
	}
	return out, nil
}

// CastMemberGateway implements castmember.Gateway on GORM.
type CastMemberGateway struct {
	db *gorm.DB
}

// NewCastMemberGateway creates a new GORM cast member gateway.
func NewCastMemberGateway(db *gorm.DB) *CastMemberGateway {
	return &CastMemberGateway{db: db}
}

// ExistsByIDs returns the subset of the requested cast member ids present in
// the database.
func (g *CastMemberGateway) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	found, err := pluckExisting(ctx, g.db, &CastMemberModel{}, toStrings(ids))
	if err != nil {
		return nil, err
	}
	out := make([]castmember.ID, len(found))
	for i, id := range found {
		out[i] = castmember.IDFrom(id)
	}
	return out, nil
}

func pluckExisting(ctx context.Context, db *gorm.DB, model interface{}, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []string
	err := db.WithContext(ctx).Model(model).Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	return found, nil
}
