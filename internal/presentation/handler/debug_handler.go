package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediabridge/internal/application/usecase/abstraction"
	"mediabridge/internal/domain/dto"
	"mediabridge/internal/presentation"
)

type DebugHandler struct {
	inspector abstraction.Inspector
}

func NewDebugHandler(inspector abstraction.Inspector) *DebugHandler {
	return &DebugHandler{
		inspector: inspector,
	}
}

// HandleDebug handles GET /api/debug/page/:pageId requests.
func (h *DebugHandler) HandleDebug(c echo.Context) error {
	blocks, err := h.inspector.GetBlocks(c.Request().Context(), c.Param(presentation.PageIDParam))
	if err != nil {
		return presentation.WriteFailure(c, err)
	}

	return c.JSON(http.StatusOK, dto.DebugBlocksResponse{
		Success: true,
		Blocks:  blocks,
	})
}
