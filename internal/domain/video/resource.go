package video

// Resource is a raw uploaded payload before it is stored and turned into a
// media descriptor. The HTTP layer produces it from multipart uploads.
type Resource struct {
	Content     []byte
	Checksum    string
	ContentType string
	Name        string
}

// VideoResource pairs a raw resource with the slot it targets. Equality is by
// media type only, which gives replace semantics when batching uploads.
type VideoResource struct {
	resource  Resource
	mediaType MediaType
}

// NewVideoResource builds a typed upload resource.
func NewVideoResource(resource Resource, mediaType MediaType) VideoResource {
	return VideoResource{resource: resource, mediaType: mediaType}
}

func (r VideoResource) Resource() Resource   { return r.resource }
func (r VideoResource) MediaType() MediaType { return r.mediaType }

// Equals compares by target media type only.
func (r VideoResource) Equals(other VideoResource) bool {
	return r.mediaType == other.mediaType
}
