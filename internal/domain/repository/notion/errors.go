package notion

import "errors"

// ErrPayloadTooLarge matches errors of the external service rejecting a
// request body for its size.
var ErrPayloadTooLarge = errors.New("payload too large for the external service")

// ServiceError is implemented by errors reported by the external service
// itself, as opposed to transport failures.
type ServiceError interface {
	error
	ServiceMessage() string
}
