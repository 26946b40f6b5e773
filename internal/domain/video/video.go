package video

import (
	"time"

	"github.com/reelstack/catalog/internal/domain/castmember"
	"github.com/reelstack/catalog/internal/domain/category"
	"github.com/reelstack/catalog/internal/domain/events"
	"github.com/reelstack/catalog/internal/domain/genre"
	"github.com/reelstack/catalog/internal/domain/validation"
)

// Video is the aggregate root of the catalog core: descriptive fields, three
// relation sets and five independently-typed media slots. Construction never
// validates; callers invoke Validate before persisting.
type Video struct {
	id ID

	title       string
	description string
	launchedAt  int // calendar year, 0 when absent
	duration    float64
	rating      Rating // empty when absent
	opened      bool
	published   bool

	createdAt time.Time
	updatedAt time.Time

	banner        ImageMedia
	thumbnail     ImageMedia
	thumbnailHalf ImageMedia
	trailer       AudioVideoMedia
	video         AudioVideoMedia

	categories  []category.ID
	genres      []genre.ID
	castMembers []castmember.ID

	events []events.DomainEvent
}

// NewVideo builds a video with fresh identity, equal creation and update
// timestamps, empty media slots and no buffered events.
func NewVideo(
	title string,
	description string,
	launchedAt int,
	duration float64,
	rating Rating,
	opened bool,
	published bool,
	categories []category.ID,
	genres []genre.ID,
	castMembers []castmember.ID,
) *Video {
	now := time.Now().UTC()
	return &Video{
		id:          NewID(),
		title:       title,
		description: description,
		launchedAt:  launchedAt,
		duration:    duration,
		rating:      rating,
		opened:      opened,
		published:   published,
		createdAt:   now,
		updatedAt:   now,
		categories:  dedup(categories),
		genres:      dedup(genres),
		castMembers: dedup(castMembers),
	}
}

// With reconstructs a video from stored state. Data loaded from storage is
// assumed already valid, so nothing is checked here.
func With(
	id ID,
	title string,
	description string,
	launchedAt int,
	duration float64,
	rating Rating,
	opened bool,
	published bool,
	createdAt time.Time,
	updatedAt time.Time,
	banner ImageMedia,
	thumbnail ImageMedia,
	thumbnailHalf ImageMedia,
	trailer AudioVideoMedia,
	videoMedia AudioVideoMedia,
	categories []category.ID,
	genres []genre.ID,
	castMembers []castmember.ID,
) *Video {
	return &Video{
		id:            id,
		title:         title,
		description:   description,
		launchedAt:    launchedAt,
		duration:      duration,
		rating:        rating,
		opened:        opened,
		published:     published,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		banner:        banner,
		thumbnail:     thumbnail,
		thumbnailHalf: thumbnailHalf,
		trailer:       trailer,
		video:         videoMedia,
		categories:    dedup(categories),
		genres:        dedup(genres),
		castMembers:   dedup(castMembers),
	}
}

// Update replaces every scalar field and relation set and refreshes the
// update timestamp. Relation slices are defensively copied; nil means empty.
func (v *Video) Update(
	title string,
	description string,
	launchedAt int,
	duration float64,
	rating Rating,
	opened bool,
	published bool,
	categories []category.ID,
	genres []genre.ID,
	castMembers []castmember.ID,
) *Video {
	v.title = title
	v.description = description
	v.launchedAt = launchedAt
	v.duration = duration
	v.rating = rating
	v.opened = opened
	v.published = published
	v.categories = dedup(categories)
	v.genres = dedup(genres)
	v.castMembers = dedup(castMembers)
	v.touch()
	return v
}

func (v *Video) ID() ID              { return v.id }
func (v *Video) Title() string       { return v.title }
func (v *Video) Description() string { return v.description }
func (v *Video) LaunchedAt() int     { return v.launchedAt }
func (v *Video) Duration() float64   { return v.duration }
func (v *Video) Rating() Rating      { return v.rating }
func (v *Video) Opened() bool        { return v.opened }
func (v *Video) Published() bool     { return v.published }

func (v *Video) CreatedAt() time.Time { return v.createdAt }
func (v *Video) UpdatedAt() time.Time { return v.updatedAt }

// Banner returns the banner slot and whether it is occupied.
func (v *Video) Banner() (ImageMedia, bool) {
	return v.banner, !v.banner.IsZero()
}

// Thumbnail returns the thumbnail slot and whether it is occupied.
func (v *Video) Thumbnail() (ImageMedia, bool) {
	return v.thumbnail, !v.thumbnail.IsZero()
}

// ThumbnailHalf returns the half-size thumbnail slot and whether it is
// occupied.
func (v *Video) ThumbnailHalf() (ImageMedia, bool) {
	return v.thumbnailHalf, !v.thumbnailHalf.IsZero()
}

// Trailer returns the trailer slot and whether it is occupied.
func (v *Video) Trailer() (AudioVideoMedia, bool) {
	return v.trailer, !v.trailer.IsZero()
}

// Video returns the main video slot and whether it is occupied.
func (v *Video) Video() (AudioVideoMedia, bool) {
	return v.video, !v.video.IsZero()
}

// Categories returns a copy of the category relation set.
func (v *Video) Categories() []category.ID {
	return append([]category.ID(nil), v.categories...)
}

// Genres returns a copy of the genre relation set.
func (v *Video) Genres() []genre.ID {
	return append([]genre.ID(nil), v.genres...)
}

// CastMembers returns a copy of the cast member relation set.
func (v *Video) CastMembers() []castmember.ID {
	return append([]castmember.ID(nil), v.castMembers...)
}

// UpdateBannerMedia sets the banner slot. Image slots never raise events.
func (v *Video) UpdateBannerMedia(media ImageMedia) *Video {
	v.banner = media
	v.touch()
	return v
}

// UpdateThumbnailMedia sets the thumbnail slot.
func (v *Video) UpdateThumbnailMedia(media ImageMedia) *Video {
	v.thumbnail = media
	v.touch()
	return v
}

// UpdateThumbnailHalfMedia sets the half-size thumbnail slot.
func (v *Video) UpdateThumbnailHalfMedia(media ImageMedia) *Video {
	v.thumbnailHalf = media
	v.touch()
	return v
}

// UpdateTrailerMedia sets the trailer slot and raises MediaCreated when the
// new media still awaits encoding.
func (v *Video) UpdateTrailerMedia(media AudioVideoMedia) *Video {
	v.trailer = media
	v.touch()
	v.onAudioVideoMediaUpdated(media)
	return v
}

// UpdateVideoMedia sets the main video slot and raises MediaCreated when the
// new media still awaits encoding.
func (v *Video) UpdateVideoMedia(media AudioVideoMedia) *Video {
	v.video = media
	v.touch()
	v.onAudioVideoMediaUpdated(media)
	return v
}

// Processing moves the given audio/video slot to PROCESSING. Image types and
// empty slots are a no-op.
func (v *Video) Processing(mediaType MediaType) *Video {
	switch mediaType {
	case MediaTypeVideo:
		if media, ok := v.Video(); ok {
			v.UpdateVideoMedia(media.Processing())
		}
	case MediaTypeTrailer:
		if media, ok := v.Trailer(); ok {
			v.UpdateTrailerMedia(media.Processing())
		}
	}
	return v
}

// Completed moves the given audio/video slot to COMPLETED with the encoded
// path set. Image types and empty slots are a no-op.
func (v *Video) Completed(mediaType MediaType, encodedPath string) *Video {
	switch mediaType {
	case MediaTypeVideo:
		if media, ok := v.Video(); ok {
			v.UpdateVideoMedia(media.Completed(encodedPath))
		}
	case MediaTypeTrailer:
		if media, ok := v.Trailer(); ok {
			v.UpdateTrailerMedia(media.Completed(encodedPath))
		}
	}
	return v
}

// Validate runs the field invariants against the handler. Every violation is
// appended; the handler decides whether to accumulate or fail fast.
func (v *Video) Validate(handler validation.Handler) {
	newValidator(v, handler).validate()
}

// TakeEvents returns the buffered domain events and clears the buffer.
func (v *Video) TakeEvents() []events.DomainEvent {
	taken := v.events
	v.events = nil
	return taken
}

// Events returns the buffered domain events without draining them.
func (v *Video) Events() []events.DomainEvent {
	return append([]events.DomainEvent(nil), v.events...)
}

func (v *Video) registerEvent(event events.DomainEvent) {
	v.events = append(v.events, event)
}

func (v *Video) onAudioVideoMediaUpdated(media AudioVideoMedia) {
	if !media.IsZero() && media.IsPendingEncode() {
		v.registerEvent(NewMediaCreated(v.id.String(), media.RawLocation()))
	}
}

func (v *Video) touch() {
	v.updatedAt = time.Now().UTC()
}

// dedup copies a relation slice dropping duplicates while preserving
// insertion order. Ordering keeps existence-check error messages stable.
func dedup[T comparable](ids []T) []T {
	out := make([]T, 0, len(ids))
	seen := make(map[T]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
