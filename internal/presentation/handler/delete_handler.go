package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediabridge/internal/application/usecase/abstraction"
	"mediabridge/internal/domain/dto"
	"mediabridge/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /api/pages/:pageId requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	if err := h.deleter.DeleteEntry(c.Request().Context(), c.Param(presentation.PageIDParam)); err != nil {
		return presentation.WriteFailure(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeletePageResponse{
		Success: true,
		Message: "Page deleted successfully",
	})
}
