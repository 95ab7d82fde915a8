package notion

import (
	"context"

	"mediabridge/internal/domain/model"
)

// Writer creates pages in the target database.
type Writer interface {
	CreatePage(ctx context.Context, draft model.PageDraft) (string, error)
}
