package broker

import (
	"context"

	"mediabridge/internal/domain/entity"
)

// Publisher announces entry lifecycle events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event entity.EntryEvent) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entity.EntryEvent) error {
	return nil
}
