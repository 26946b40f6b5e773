package gorm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB creates a new in-memory SQLite database for testing.
func NewTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&CategoryModel{},
		&GenreModel{},
		&CastMemberModel{},
		&VideoModel{},
		&VideoCategoryModel{},
		&VideoGenreModel{},
		&VideoCastMemberModel{},
	)
	require.NoError(t, err)

	return db
}
