package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediabridge/internal/application/usecase/abstraction"
	"mediabridge/internal/domain/dto"
	"mediabridge/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /api/pages requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	pages, err := h.lister.ListEntries(c.Request().Context())
	if err != nil {
		return presentation.WriteFailure(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListPagesResponse{
		Success: true,
		Pages:   pages,
	})
}
