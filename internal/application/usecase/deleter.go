package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"mediabridge/internal/domain/entity"
	"mediabridge/internal/domain/repository/broker"
	"mediabridge/internal/domain/repository/metrics"
	"mediabridge/internal/domain/repository/notion"
)

// Deleter implements the Deleter abstraction by archiving entries.
type Deleter struct {
	remover   notion.Remover
	publisher broker.Publisher
	recorder  metrics.Recorder
}

// NewDeleter creates a new Deleter usecase.
func NewDeleter(remover notion.Remover, publisher broker.Publisher, recorder metrics.Recorder) *Deleter {
	return &Deleter{
		remover:   remover,
		publisher: publisher,
		recorder:  recorder,
	}
}

// DeleteEntry archives the entry. There is no way back through the bridge.
func (d *Deleter) DeleteEntry(ctx context.Context, pageID string) error {
	start := time.Now()
	err := d.deleteEntry(ctx, pageID)
	d.recorder.RecordOperation("delete", time.Since(start), err)

	return err
}

func (d *Deleter) deleteEntry(ctx context.Context, pageID string) error {
	if strings.TrimSpace(pageID) == "" {
		return &entity.Failure{Status: http.StatusBadRequest, Message: "missing page id"}
	}

	if err := d.remover.ArchivePage(ctx, pageID); err != nil {
		logger.Error("delete failed", "page_id", pageID, "err", err)

		return upstreamFailure(err, "Failed to delete page from Notion")
	}

	publishEvent(ctx, d.publisher, entity.EventArchived, pageID)

	return nil
}
