package notion

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jomei/notionapi"

	notionRepository "mediabridge/internal/domain/repository/notion"
)

const (
	codeRequestTooLarge = "request_entity_too_large"
	codeRateLimited     = "rate_limited"
)

// APIError is an error object returned by the external API.
type APIError struct {
	Status  int
	Code    string
	Message string

	err error
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion: %d %s", e.Status, e.Message)
	}

	return fmt.Sprintf("notion: %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// ServiceMessage is the message written by the API, without decoration.
func (e *APIError) ServiceMessage() string {
	return e.Message
}

// Is lets errors.Is match notionRepository.ErrPayloadTooLarge.
func (e *APIError) Is(target error) bool {
	return target == notionRepository.ErrPayloadTooLarge && e.payloadTooLarge()
}

func (e *APIError) payloadTooLarge() bool {
	return e.Status == http.StatusRequestEntityTooLarge || e.Code == codeRequestTooLarge
}

// IsPayloadTooLarge reports whether err is the API rejecting a request body
// for its size.
func IsPayloadTooLarge(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.payloadTooLarge()
}

// translateError turns the SDK's error objects into APIError. Transport
// and decoding failures pass through unchanged.
func translateError(err error) error {
	var sdkErr *notionapi.Error
	if errors.As(err, &sdkErr) {
		apiErr := &APIError{
			Status:  sdkErr.Status,
			Code:    string(sdkErr.Code),
			Message: sdkErr.Message,
			err:     err,
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(apiErr.Status)
		}

		return apiErr
	}

	var rateErr *notionapi.RateLimitedError
	if errors.As(err, &rateErr) {
		return &APIError{
			Status:  http.StatusTooManyRequests,
			Code:    codeRateLimited,
			Message: rateErr.Message,
			err:     err,
		}
	}

	return err
}
