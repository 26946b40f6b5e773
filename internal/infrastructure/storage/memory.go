package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/reelstack/catalog/internal/domain/video"
)

// MemoryMediaGateway is an in-memory MediaResourceGateway used by tests and
// local development. Blobs are keyed by video id and slot.
type MemoryMediaGateway struct {
	mu    sync.RWMutex
	blobs map[video.ID]map[video.MediaType]video.Resource
}

// NewMemoryMediaGateway creates an empty in-memory media gateway.
func NewMemoryMediaGateway() *MemoryMediaGateway {
	return &MemoryMediaGateway{
		blobs: make(map[video.ID]map[video.MediaType]video.Resource),
	}
}

// StoreAudioVideo stores the payload and returns a PENDING audio/video
// descriptor pointing at its raw location.
func (g *MemoryMediaGateway) StoreAudioVideo(ctx context.Context, id video.ID, resource video.VideoResource) (video.AudioVideoMedia, error) {
	raw := resource.Resource()
	g.put(id, resource.MediaType(), raw)
	return video.NewAudioVideoMedia(raw.Checksum, raw.Name, Filepath(id, resource.MediaType())), nil
}

// StoreImage stores the payload and returns an image descriptor pointing at
// its location.
func (g *MemoryMediaGateway) StoreImage(ctx context.Context, id video.ID, resource video.VideoResource) (video.ImageMedia, error) {
	raw := resource.Resource()
	g.put(id, resource.MediaType(), raw)
	return video.NewImageMedia(raw.Checksum, raw.Name, Filepath(id, resource.MediaType())), nil
}

// ClearResources drops every blob stored for the video.
func (g *MemoryMediaGateway) ClearResources(ctx context.Context, id video.ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.blobs, id)
	return nil
}

// GetResource returns the stored payload for the video and slot, if any.
func (g *MemoryMediaGateway) GetResource(ctx context.Context, id video.ID, mediaType video.MediaType) (video.Resource, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slots, ok := g.blobs[id]
	if !ok {
		return video.Resource{}, false, nil
	}
	resource, ok := slots[mediaType]
	return resource, ok, nil
}

// StoredCount reports how many blobs are held for the video. Test helper.
func (g *MemoryMediaGateway) StoredCount(id video.ID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.blobs[id])
}

func (g *MemoryMediaGateway) put(id video.ID, mediaType video.MediaType, resource video.Resource) {
	g.mu.Lock()
	defer g.mu.Unlock()
	slots, ok := g.blobs[id]
	if !ok {
		slots = make(map[video.MediaType]video.Resource)
		g.blobs[id] = slots
	}
	slots[mediaType] = resource
}

// Filepath is the storage key for a video's media slot: the video id as the
// folder, the slot name as the filename.
func Filepath(id video.ID, mediaType video.MediaType) string {
	return fmt.Sprintf("%s/%s", id.String(), mediaType.String())
}
