package video

import "time"

// EventTypeMediaCreated identifies the event raised when a raw audio/video
// asset is attached to a video.
const EventTypeMediaCreated = "video.media.created"

// MediaCreated records that a not-yet-encoded audio/video asset was attached
// to a video. Downstream infrastructure serializes it for the encoder
// pipeline.
type MediaCreated struct {
	ResourceID string    `json:"resource_id"`
	FilePath   string    `json:"file_path"`
	OccurredAt time.Time `json:"occurred_on"`
}

// NewMediaCreated builds the event stamped with the current instant.
func NewMediaCreated(resourceID, filePath string) MediaCreated {
	return MediaCreated{
		ResourceID: resourceID,
		FilePath:   filePath,
		OccurredAt: time.Now().UTC(),
	}
}

func (e MediaCreated) EventType() string {
	return EventTypeMediaCreated
}

func (e MediaCreated) OccurredOn() time.Time {
	return e.OccurredAt
}
