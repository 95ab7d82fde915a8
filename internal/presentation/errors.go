package presentation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"mediabridge/internal/domain/dto"
	"mediabridge/internal/domain/entity"
)

// WriteFailure renders err as the bridge error body. Errors that are not an
// *entity.Failure become a plain 500.
func WriteFailure(c echo.Context, err error) error {
	var f *entity.Failure
	if !errors.As(err, &f) {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(f.Status, dto.ErrorResponse{
		Error:   f.Message,
		Code:    f.Code,
		Details: f.Details,
	})
}

// HTTPErrorHandler renders errors returned through echo, such as body limit
// rejections and unknown routes, in the same shape as handler failures.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			logger.Debug("request rejected", "path", c.Request().URL.Path, "err", he.Internal)
		}
		if he.Code == http.StatusRequestEntityTooLarge {
			err = entity.PayloadTooLarge(err)
		} else {
			err = &entity.Failure{Status: he.Code, Message: fmt.Sprint(he.Message), Err: err}
		}
	} else {
		var f *entity.Failure
		if !errors.As(err, &f) {
			logger.Error("unhandled request error", "path", c.Request().URL.Path, "err", err)
			err = &entity.Failure{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
		}
	}

	if c.Request().Method == http.MethodHead {
		var f *entity.Failure
		_ = errors.As(err, &f)
		_ = c.NoContent(f.Status)

		return
	}

	if werr := WriteFailure(c, err); werr != nil {
		logger.Error("failed to write error response", "err", werr)
	}
}
