package video

import "github.com/google/uuid"

// MediaStatus tracks where an audio/video asset stands in the external
// encoding pipeline.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "PENDING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
)

// ImageMedia is an immutable descriptor of a stored image asset. Identity is
// checksum plus location; the display name is metadata only.
type ImageMedia struct {
	checksum string
	name     string
	location string
}

// NewImageMedia builds an image media descriptor.
func NewImageMedia(checksum, name, location string) ImageMedia {
	return ImageMedia{checksum: checksum, name: name, location: location}
}

func (m ImageMedia) Checksum() string { return m.checksum }
func (m ImageMedia) Name() string     { return m.name }
func (m ImageMedia) Location() string { return m.location }

// IsZero reports whether the descriptor is unset.
func (m ImageMedia) IsZero() bool {
	return m == ImageMedia{}
}

// Equals compares by checksum and location only: same bytes at the same place
// are the same image regardless of name.
func (m ImageMedia) Equals(other ImageMedia) bool {
	return m.checksum == other.checksum && m.location == other.location
}

// AudioVideoMedia is an immutable descriptor of a stored audio/video asset,
// including its encoding status. Identity is checksum plus raw location.
type AudioVideoMedia struct {
	id              string
	checksum        string
	name            string
	rawLocation     string
	encodedLocation string
	status          MediaStatus
}

// NewAudioVideoMedia builds a freshly stored asset descriptor: new internal
// id, empty encoded location, PENDING status.
func NewAudioVideoMedia(checksum, name, rawLocation string) AudioVideoMedia {
	return AudioVideoMedia{
		id:          uuid.NewString(),
		checksum:    checksum,
		name:        name,
		rawLocation: rawLocation,
		status:      MediaStatusPending,
	}
}

// AudioVideoMediaWith reconstructs a descriptor with every field supplied,
// e.g. from storage.
func AudioVideoMediaWith(id, checksum, name, rawLocation, encodedLocation string, status MediaStatus) AudioVideoMedia {
	return AudioVideoMedia{
		id:              id,
		checksum:        checksum,
		name:            name,
		rawLocation:     rawLocation,
		encodedLocation: encodedLocation,
		status:          status,
	}
}

func (m AudioVideoMedia) MediaID() string         { return m.id }
func (m AudioVideoMedia) Checksum() string        { return m.checksum }
func (m AudioVideoMedia) Name() string            { return m.name }
func (m AudioVideoMedia) RawLocation() string     { return m.rawLocation }
func (m AudioVideoMedia) EncodedLocation() string { return m.encodedLocation }
func (m AudioVideoMedia) Status() MediaStatus     { return m.status }

// IsZero reports whether the descriptor is unset.
func (m AudioVideoMedia) IsZero() bool {
	return m == AudioVideoMedia{}
}

// IsPendingEncode reports whether the asset still awaits encoding.
func (m AudioVideoMedia) IsPendingEncode() bool {
	return m.status == MediaStatusPending
}

// Processing returns a copy of the media moved to PROCESSING.
func (m AudioVideoMedia) Processing() AudioVideoMedia {
	m.status = MediaStatusProcessing
	return m
}

// Completed returns a copy of the media moved to COMPLETED with the encoded
// path set.
func (m AudioVideoMedia) Completed(encodedPath string) AudioVideoMedia {
	m.status = MediaStatusCompleted
	m.encodedLocation = encodedPath
	return m
}

// Equals compares by checksum and raw location only.
func (m AudioVideoMedia) Equals(other AudioVideoMedia) bool {
	return m.checksum == other.checksum && m.rawLocation == other.rawLocation
}
