package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"

	"mediabridge/internal/domain/entity"
	"mediabridge/internal/domain/repository/notion"
)

// Inspector exposes the raw content blocks of an entry for diagnostics.
type Inspector struct {
	retriever notion.Retriever
}

// NewInspector creates a new Inspector usecase.
func NewInspector(retriever notion.Retriever) *Inspector {
	return &Inspector{
		retriever: retriever,
	}
}

// GetBlocks returns the blocks of a page exactly as the external service
// sent them.
func (i *Inspector) GetBlocks(ctx context.Context, pageID string) ([]json.RawMessage, error) {
	if strings.TrimSpace(pageID) == "" {
		return nil, &entity.Failure{Status: http.StatusBadRequest, Message: "missing page id"}
	}

	blocks, err := i.retriever.ListBlocks(ctx, pageID)
	if err != nil {
		logger.Error("debug fetch failed", "page_id", pageID, "err", err)

		return nil, upstreamFailure(err, "Failed to fetch page blocks")
	}

	raw := make([]json.RawMessage, 0, len(blocks))
	for _, b := range blocks {
		raw = append(raw, b.Raw)
	}

	return raw, nil
}
