package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"golang.org/x/sync/errgroup"

	"mediabridge/internal/domain/dto"
	"mediabridge/internal/domain/model"
	"mediabridge/internal/domain/repository/metrics"
	"mediabridge/internal/domain/repository/notion"
)

type ListerConfig struct {
	// FanOutLimit bounds concurrent content reads; 0 reads all entries at once.
	FanOutLimit int `yaml:"fan_out_limit"`
	// Strict fails the whole listing when one entry cannot be read instead
	// of leaving the entry out.
	Strict bool `yaml:"strict"`
}

// Lister implements the Lister abstraction for browsing entries.
type Lister struct {
	lister    notion.Lister
	retriever notion.Retriever
	recorder  metrics.Recorder
	cfg       ListerConfig
}

// NewLister creates a new Lister usecase.
func NewLister(lister notion.Lister, retriever notion.Retriever, recorder metrics.Recorder,
	cfg ListerConfig,
) *Lister {
	return &Lister{
		lister:    lister,
		retriever: retriever,
		recorder:  recorder,
		cfg:       cfg,
	}
}

// ListEntries returns every entry newest first, each with its first media
// block. Entries whose content cannot be read are logged and left out.
func (l *Lister) ListEntries(ctx context.Context) ([]dto.PageDescriptor, error) {
	start := time.Now()
	pages, err := l.listEntries(ctx)
	l.recorder.RecordOperation("list", time.Since(start), err)

	return pages, err
}

func (l *Lister) listEntries(ctx context.Context) ([]dto.PageDescriptor, error) {
	pages, err := l.lister.QueryPages(ctx)
	if err != nil {
		logger.Error("fetch pages failed", "err", err)

		return nil, upstreamFailure(err, "Failed to fetch pages from Notion")
	}

	entries := make([]*model.Entry, len(pages))

	// a failing branch must not cancel its siblings, so no shared context.
	g := new(errgroup.Group)
	if l.cfg.FanOutLimit > 0 {
		g.SetLimit(l.cfg.FanOutLimit)
	}

	for i := range pages {
		g.Go(func() error {
			blocks, err := l.retriever.ListBlocks(ctx, pages[i].ID)
			if err != nil {
				logger.Error("failed to fetch content for page", "page_id", pages[i].ID, "err", err)
				l.recorder.RecordDroppedEntry(pages[i].ID)

				if l.cfg.Strict {
					return fmt.Errorf("page %s: %w", pages[i].ID, err)
				}

				return nil
			}

			entries[i] = &model.Entry{Page: pages[i], Media: model.FirstMedia(blocks)}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, upstreamFailure(err, "Failed to fetch pages from Notion")
	}

	descriptors := make([]dto.PageDescriptor, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		descriptors = append(descriptors, dto.NewPageDescriptor(*e))
	}

	return descriptors, nil
}
