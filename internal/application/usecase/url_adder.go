package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	validation "github.com/go-ozzo/ozzo-validation"

	"mediabridge/internal/domain/entity"
	"mediabridge/internal/domain/model"
	"mediabridge/internal/domain/repository/broker"
	"mediabridge/internal/domain/repository/metrics"
	"mediabridge/internal/domain/repository/notion"
)

// URLAdder creates bookmark entries.
type URLAdder struct {
	writer    notion.Writer
	publisher broker.Publisher
	recorder  metrics.Recorder
}

func NewURLAdder(writer notion.Writer, publisher broker.Publisher, recorder metrics.Recorder) *URLAdder {
	return &URLAdder{
		writer:    writer,
		publisher: publisher,
		recorder:  recorder,
	}
}

func (a *URLAdder) AddURL(ctx context.Context, title, url, caption string) (entity.UploadResult, error) {
	start := time.Now()
	result, err := a.addURL(ctx, title, url, caption)
	a.recorder.RecordOperation("add_url", time.Since(start), err)

	return result, err
}

func (a *URLAdder) addURL(ctx context.Context, title, url, caption string) (entity.UploadResult, error) {
	// an empty title is accepted; the entry is listed as untitled
	if err := validation.Validate(strings.TrimSpace(url), validation.Required); err != nil {
		return entity.UploadResult{}, &entity.Failure{Status: http.StatusBadRequest, Message: "No URL provided"}
	}

	pageID, err := a.writer.CreatePage(ctx, model.PageDraft{
		Title:  title,
		Blocks: []model.Block{model.NewBookmarkBlock(url, caption)},
	})
	if err != nil {
		logger.Error("URL add failed", "url", url, "err", err)

		return entity.UploadResult{}, upstreamFailure(err, "Failed to add URL to Notion")
	}

	publishEvent(ctx, a.publisher, entity.EventCreated, pageID)

	return entity.UploadResult{PageID: pageID}, nil
}
