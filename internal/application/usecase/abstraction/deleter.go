package abstraction

import "context"

// Deleter defines the interface for archiving entries.
type Deleter interface {
	DeleteEntry(ctx context.Context, pageID string) error
}
