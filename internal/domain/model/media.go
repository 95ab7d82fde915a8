package model

// MediaKind is the kind of a media descriptor shown in the gallery.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaBookmark MediaKind = "bookmark"
)

// MediaDescriptor is the normalized view of the first media block of an
// entry. It is derived on every listing and never stored.
type MediaDescriptor struct {
	Type    MediaKind
	URL     string
	Caption string
}

// MediaKindFromUploadType maps the declared upload type onto the kind of
// block created for an external URL. Anything but "image" becomes a video.
func MediaKindFromUploadType(uploadType string) MediaKind {
	if uploadType == string(MediaImage) {
		return MediaImage
	}

	return MediaVideo
}
