package notion

import (
	"context"

	"mediabridge/internal/domain/model"
)

// Lister enumerates the pages of the target database, newest first.
type Lister interface {
	QueryPages(ctx context.Context) ([]model.Page, error)
}
