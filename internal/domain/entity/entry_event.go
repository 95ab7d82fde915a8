package entity

import "time"

type EventType string

const (
	EventCreated  EventType = "created"
	EventArchived EventType = "archived"
)

// EntryEvent is published after an entry was created or archived.
type EntryEvent struct {
	Event  EventType `json:"event"`
	PageID string    `json:"page_id"`
	At     time.Time `json:"at"`
}
