package utils

import "strings"

// extensions covers the payloads the uploader accepts; anything else is
// archived as an opaque binary.
var extensions = map[string]string{
	"image/avif":       ".avif",
	"image/bmp":        ".bmp",
	"image/gif":        ".gif",
	"image/heic":       ".heic",
	"image/jpeg":       ".jpg",
	"image/png":        ".png",
	"image/svg+xml":    ".svg",
	"image/tiff":       ".tif",
	"image/webp":       ".webp",
	"video/3gpp":       ".3gp",
	"video/mp4":        ".mp4",
	"video/mpeg":       ".mpeg",
	"video/ogg":        ".ogv",
	"video/quicktime":  ".mov",
	"video/webm":       ".webm",
	"video/x-flv":      ".flv",
	"video/x-matroska": ".mkv",
	"video/x-msvideo":  ".avi",
	"video/x-ms-wmv":   ".wmv",
}

// BaseMimeType strips parameters such as "; charset=utf-8".
func BaseMimeType(mimeType string) string {
	return strings.TrimSpace(strings.ToLower(strings.Split(mimeType, ";")[0]))
}

// GetExtensionFromMimeType returns the usual extension for mimeType, ".bin"
// when unknown.
func GetExtensionFromMimeType(mimeType string) string {
	if ext, ok := extensions[BaseMimeType(mimeType)]; ok {
		return ext
	}

	return ".bin"
}

// HasMediaPrefix reports whether mimeType belongs to the top-level media
// class, e.g. HasMediaPrefix("image/png", "image") is true.
func HasMediaPrefix(mimeType, class string) bool {
	return strings.HasPrefix(BaseMimeType(mimeType), class+"/")
}
