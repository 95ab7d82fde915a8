package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	validation "github.com/go-ozzo/ozzo-validation"

	"mediabridge/internal/domain/entity"
	"mediabridge/internal/domain/repository/broker"
	"mediabridge/internal/domain/repository/notion"
)

// upstreamFailure maps an external service error onto the bridge response.
// A size rejection gets its own code so the client can point at the URL
// flow; everything else is passed through as a 500 with the service message.
func upstreamFailure(err error, fallback string) *entity.Failure {
	if errors.Is(err, notion.ErrPayloadTooLarge) {
		return entity.PayloadTooLarge(err)
	}

	failure := &entity.Failure{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
		Details: err.Error(),
		Err:     err,
	}

	var svcErr notion.ServiceError
	if errors.As(err, &svcErr) {
		failure.Message = svcErr.ServiceMessage()
		failure.Details = svcErr
	}
	if failure.Message == "" {
		failure.Message = fallback
	}

	return failure
}

// validationFailure turns ozzo validation errors into a 400.
func validationFailure(err error) *entity.Failure {
	failure := &entity.Failure{
		Status:  http.StatusBadRequest,
		Code:    entity.CodeValidationFailed,
		Message: err.Error(),
		Err:     err,
	}

	var errs validation.Errors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for field := range errs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		failure.Message = errs[fields[0]].Error()
		failure.Details = errs
	}

	return failure
}

// publishEvent never fails the caller: the entry already exists remotely.
func publishEvent(ctx context.Context, publisher broker.Publisher, event entity.EventType, pageID string) {
	err := publisher.Publish(ctx, entity.EntryEvent{
		Event:  event,
		PageID: pageID,
		At:     time.Now().UTC(),
	})
	if err != nil {
		logger.Error("failed to publish entry event", "event", event, "page_id", pageID, "err", err)
	}
}
