package notion

import (
	"context"

	"mediabridge/internal/domain/model"
)

// Retriever reads the content blocks of a page.
type Retriever interface {
	ListBlocks(ctx context.Context, pageID string) ([]model.Block, error)
}
