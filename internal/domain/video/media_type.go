package video

import "strings"

// MediaType discriminates the five media slots of a video.
type MediaType string

const (
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeTrailer       MediaType = "TRAILER"
	MediaTypeBanner        MediaType = "BANNER"
	MediaTypeThumbnail     MediaType = "THUMBNAIL"
	MediaTypeThumbnailHalf MediaType = "THUMBNAIL_HALF"
)

// ParseMediaType resolves an external string into a MediaType,
// case-insensitively. Unknown strings report ok=false rather than an error so
// callers can map them to a not-found outcome.
func ParseMediaType(value string) (MediaType, bool) {
	switch MediaType(strings.ToUpper(value)) {
	case MediaTypeVideo:
		return MediaTypeVideo, true
	case MediaTypeTrailer:
		return MediaTypeTrailer, true
	case MediaTypeBanner:
		return MediaTypeBanner, true
	case MediaTypeThumbnail:
		return MediaTypeThumbnail, true
	case MediaTypeThumbnailHalf:
		return MediaTypeThumbnailHalf, true
	default:
		return "", false
	}
}

// String returns the external label of the media type.
func (t MediaType) String() string {
	return string(t)
}

// IsAudioVideo reports whether the slot holds audio/video content rather than
// an image.
func (t MediaType) IsAudioVideo() bool {
	return t == MediaTypeVideo || t == MediaTypeTrailer
}
