package handler

import (
	"errors"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"mediabridge/internal/application/usecase/abstraction"
	"mediabridge/internal/domain/dto"
	"mediabridge/internal/domain/entity"
	"mediabridge/internal/presentation"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleUpload handles POST /api/upload requests. The payload is either a
// multipart file or an externalUrl form field.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	in := entity.UploadInput{
		Title:       c.FormValue(presentation.TitleField),
		Caption:     c.FormValue(presentation.CaptionField),
		Type:        c.FormValue(presentation.TypeField),
		ExternalURL: c.FormValue(presentation.ExternalURLField),
	}

	if in.ExternalURL == "" {
		fh, err := c.FormFile(presentation.FileField)
		switch {
		case err == nil:
			f, err := fh.Open()
			if err != nil {
				logger.Error("failed to open uploaded file", "file", fh.Filename, "err", err)

				return presentation.WriteFailure(c, err)
			}
			defer f.Close()

			in.File = &entity.FileInput{
				Name:        fh.Filename,
				ContentType: fh.Header.Get(echo.HeaderContentType),
				Size:        fh.Size,
				Content:     f,
			}
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		default:
			return presentation.WriteFailure(c, &entity.Failure{
				Status:  http.StatusBadRequest,
				Message: "malformed upload form",
				Err:     err,
			})
		}
	}

	result, err := h.uploader.Upload(c.Request().Context(), in)
	if err != nil {
		return presentation.WriteFailure(c, err)
	}

	return c.JSON(http.StatusOK, dto.CreatePageResponse{
		Success:    true,
		PageID:     result.PageID,
		Message:    result.Message,
		ArchiveURL: result.ArchiveLocation,
	})
}
