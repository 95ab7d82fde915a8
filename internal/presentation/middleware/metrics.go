package middleware

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestRecorder observes served requests.
type RequestRecorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
}

// Metrics records every request under its route pattern, not its raw path,
// so page identifiers do not explode the label space.
func Metrics(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			recorder.RecordRequest(ctx.Request().Method, route, status, time.Since(start))

			return err
		}
	}
}
