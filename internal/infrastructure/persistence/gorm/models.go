package gorm

import (
	"time"

	"github.com/reelstack/catalog/internal/domain/castmember"
	"github.com/reelstack/catalog/internal/domain/category"
	"github.com/reelstack/catalog/internal/domain/genre"
	"github.com/reelstack/catalog/internal/domain/video"
)

// VideoModel is the persistence shape of the video aggregate. Media slots are
// embedded with column prefixes; relation sets live in join tables ordered by
// position so reloads preserve insertion order.
type VideoModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"not null;index"`
	Description string `gorm:"type:text"`
	LaunchedAt  int
	Duration    float64
	Rating      string
	Opened      bool
	Published   bool
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Banner        ImageMediaModel      `gorm:"embedded;embeddedPrefix:banner_"`
	Thumbnail     ImageMediaModel      `gorm:"embedded;embeddedPrefix:thumbnail_"`
	ThumbnailHalf ImageMediaModel      `gorm:"embedded;embeddedPrefix:thumbnail_half_"`
	Trailer       AudioVideoMediaModel `gorm:"embedded;embeddedPrefix:trailer_"`
	Video         AudioVideoMediaModel `gorm:"embedded;embeddedPrefix:video_"`

	Categories  []VideoCategoryModel   `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Genres      []VideoGenreModel      `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	CastMembers []VideoCastMemberModel `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

func (VideoModel) TableName() string { return "videos" }

// ImageMediaModel holds one image slot. All columns empty means the slot is
// unset.
type ImageMediaModel struct {
	Checksum string
	Name     string
	Location string
}

// AudioVideoMediaModel holds one audio/video slot together with its encoding
// status.
type AudioVideoMediaModel struct {
	MediaID         string
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          string
}

// VideoCategoryModel is a join row linking a video to a category.
type VideoCategoryModel struct {
	VideoID    string `gorm:"type:uuid;primaryKey"`
	CategoryID string `gorm:"type:uuid;primaryKey"`
	Position   int    `gorm:"not null"`
}

func (VideoCategoryModel) TableName() string { return "videos_categories" }

// VideoGenreModel is a join row linking a video to a genre.
type VideoGenreModel struct {
	VideoID  string `gorm:"type:uuid;primaryKey"`
	GenreID  string `gorm:"type:uuid;primaryKey"`
	Position int    `gorm:"not null"`
}

func (VideoGenreModel) TableName() string { return "videos_genres" }

// VideoCastMemberModel is a join row linking a video to a cast member.
type VideoCastMemberModel struct {
	VideoID      string `gorm:"type:uuid;primaryKey"`
	CastMemberID string `gorm:"type:uuid;primaryKey"`
	Position     int    `gorm:"not null"`
}

func (VideoCastMemberModel) TableName() string { return "videos_cast_members" }

// CategoryModel backs the category existence checks.
type CategoryModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Active      bool
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	DeletedAt   *time.Time
}

func (CategoryModel) TableName() string { return "categories" }

// NewCategoryModel maps a category entity into its persistence shape.
func NewCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

// ToDomain maps the row back into the category entity.
func (m *CategoryModel) ToDomain() *category.Category {
	return &category.Category{
		ID:          category.IDFrom(m.ID),
		Name:        m.Name,
		Description: m.Description,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
	}
}

// GenreModel backs the genre existence checks.
type GenreModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"not null"`
	Active    bool
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	DeletedAt *time.Time
}

func (GenreModel) TableName() string { return "genres" }

// NewGenreModel maps a genre entity into its persistence shape.
func NewGenreModel(g *genre.Genre) *GenreModel {
	return &GenreModel{
		ID:        g.ID.String(),
		Name:      g.Name,
		Active:    g.Active,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		DeletedAt: g.DeletedAt,
	}
}

// ToDomain maps the row back into the genre entity.
func (m *GenreModel) ToDomain() *genre.Genre {
	return &genre.Genre{
		ID:        genre.IDFrom(m.ID),
		Name:      m.Name,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
	}
}

// CastMemberModel backs the cast member existence checks.
type CastMemberModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"not null"`
	Type      string `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (CastMemberModel) TableName() string { return "cast_members" }

// NewCastMemberModel maps a cast member entity into its persistence shape.
func NewCastMemberModel(c *castmember.CastMember) *CastMemberModel {
	return &CastMemberModel{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToDomain maps the row back into the cast member entity. An unknown stored
// type is kept as the zero Type rather than guessed.
func (m *CastMemberModel) ToDomain() *castmember.CastMember {
	memberType, _ := castmember.ParseType(m.Type)
	return &castmember.CastMember{
		ID:        castmember.IDFrom(m.ID),
		Name:      m.Name,
		Type:      memberType,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewVideoModel maps the aggregate into its persistence shape.
func NewVideoModel(v *video.Video) *VideoModel {
	model := &VideoModel{
		ID:          v.ID().String(),
		Title:       v.Title(),
		Description: v.Description(),
		LaunchedAt:  v.LaunchedAt(),
		Duration:    v.Duration(),
		Rating:      string(v.Rating()),
		Opened:      v.Opened(),
		Published:   v.Published(),
		CreatedAt:   v.CreatedAt(),
		UpdatedAt:   v.UpdatedAt(),
	}

	if banner, ok := v.Banner(); ok {
		model.Banner = newImageMediaModel(banner)
	}
	if thumbnail, ok := v.Thumbnail(); ok {
		model.Thumbnail = newImageMediaModel(thumbnail)
	}
	if half, ok := v.ThumbnailHalf(); ok {
		model.ThumbnailHalf = newImageMediaModel(half)
	}
	if trailer, ok := v.Trailer(); ok {
		model.Trailer = newAudioVideoMediaModel(trailer)
	}
	if main, ok := v.Video(); ok {
		model.Video = newAudioVideoMediaModel(main)
	}

	for i, id := range v.Categories() {
		model.Categories = append(model.Categories, VideoCategoryModel{
			VideoID:    model.ID,
			CategoryID: id.String(),
			Position:   i,
		})
	}
	for i, id := range v.Genres() {
		model.Genres = append(model.Genres, VideoGenreModel{
			VideoID:  model.ID,
			GenreID:  id.String(),
			Position: i,
		})
	}
	for i, id := range v.CastMembers() {
		model.CastMembers = append(model.CastMembers, VideoCastMemberModel{
			VideoID:      model.ID,
			CastMemberID: id.String(),
			Position:     i,
		})
	}

	return model
}

// ToDomain reconstructs the aggregate from its persistence shape.
func (m *VideoModel) ToDomain() *video.Video {
	categories := make([]category.ID, len(m.Categories))
	for i, join := range m.Categories {
		categories[i] = category.IDFrom(join.CategoryID)
	}
	genres := make([]genre.ID, len(m.Genres))
	for i, join := range m.Genres {
		genres[i] = genre.IDFrom(join.GenreID)
	}
	castMembers := make([]castmember.ID, len(m.CastMembers))
	for i, join := range m.CastMembers {
		castMembers[i] = castmember.IDFrom(join.CastMemberID)
	}

	return video.With(
		video.IDFrom(m.ID),
		m.Title,
		m.Description,
		m.LaunchedAt,
		m.Duration,
		video.Rating(m.Rating),
		m.Opened,
		m.Published,
		m.CreatedAt,
		m.UpdatedAt,
		m.Banner.toDomain(),
		m.Thumbnail.toDomain(),
		m.ThumbnailHalf.toDomain(),
		m.Trailer.toDomain(),
		m.Video.toDomain(),
		categories,
		genres,
		castMembers,
	)
}

func newImageMediaModel(media video.ImageMedia) ImageMediaModel {
	return ImageMediaModel{
		Checksum: media.Checksum(),
		Name:     media.Name(),
		Location: media.Location(),
	}
}

func (m ImageMediaModel) toDomain() video.ImageMedia {
	if m == (ImageMediaModel{}) {
		return video.ImageMedia{}
	}
	return video.NewImageMedia(m.Checksum, m.Name, m.Location)
}

func newAudioVideoMediaModel(media video.AudioVideoMedia) AudioVideoMediaModel {
	return AudioVideoMediaModel{
		MediaID:         media.MediaID(),
		Checksum:        media.Checksum(),
		Name:            media.Name(),
		RawLocation:     media.RawLocation(),
		EncodedLocation: media.EncodedLocation(),
		Status:          string(media.Status()),
	}
}

func (m AudioVideoMediaModel) toDomain() video.AudioVideoMedia {
	if m == (AudioVideoMediaModel{}) {
		return video.AudioVideoMedia{}
	}
	return video.AudioVideoMediaWith(
		m.MediaID,
		m.Checksum,
		m.Name,
		m.RawLocation,
		m.EncodedLocation,
		video.MediaStatus(m.Status),
	)
}
