package dto

import (
	"time"

	"mediabridge/internal/domain/model"
)

type MediaDescriptor struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type PageDescriptor struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	CreatedTime time.Time        `json:"createdTime"`
	Media       *MediaDescriptor `json:"media"`
}

// NewPageDescriptor flattens an entry into its wire shape.
func NewPageDescriptor(e model.Entry) PageDescriptor {
	d := PageDescriptor{
		ID:          e.ID,
		Title:       e.Title,
		CreatedTime: e.CreatedTime,
	}

	if e.Media != nil {
		d.Media = &MediaDescriptor{
			Type:    string(e.Media.Type),
			URL:     e.Media.URL,
			Caption: e.Media.Caption,
		}
	}

	return d
}
