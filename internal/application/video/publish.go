package video

import (
	"context"

	"github.com/reelstack/catalog/internal/domain/events"
	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/pkg/interfaces"
)

// publishEvents drains the aggregate's buffered events and hands them to the
// publisher. Called only after a successful persistence call, never before.
// Publish failures are logged and swallowed: delivery is at-least-once at
// best and must not fail the completed operation.
func publishEvents(ctx context.Context, publisher events.Publisher, log interfaces.Logger, v *video.Video) {
	if publisher == nil {
		return
	}
	for _, event := range v.TakeEvents() {
		if err := publisher.Publish(ctx, event); err != nil {
			log.Error("failed to publish domain event",
				interfaces.String("video_id", v.ID().String()),
				interfaces.String("event_type", event.EventType()),
				interfaces.Error(err))
		}
	}
}
