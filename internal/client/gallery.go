package client

import (
	"time"

	"mediabridge/internal/domain/dto"
)

const galleryDateLayout = "Jan 2, 2006"

type GalleryItem struct {
	ID      string
	Title   string
	Type    string
	URL     string
	Caption string
	Created string
}

// HasMedia is false for entries whose content holds no image, video or
// bookmark.
func (g GalleryItem) HasMedia() bool {
	return g.Type != ""
}

// Gallery derives the items shown for entries, with creation dates rendered
// in loc. A nil loc means local time.
func Gallery(entries []dto.PageDescriptor, loc *time.Location) []GalleryItem {
	if loc == nil {
		loc = time.Local
	}

	items := make([]GalleryItem, 0, len(entries))
	for _, e := range entries {
		item := GalleryItem{
			ID:      e.ID,
			Title:   e.Title,
			Created: e.CreatedTime.In(loc).Format(galleryDateLayout),
		}
		if e.Media != nil {
			item.Type = e.Media.Type
			item.URL = e.Media.URL
			item.Caption = e.Media.Caption
		}
		items = append(items, item)
	}

	return items
}
