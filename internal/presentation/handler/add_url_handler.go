package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediabridge/internal/application/usecase/abstraction"
	"mediabridge/internal/domain/dto"
	"mediabridge/internal/domain/entity"
	"mediabridge/internal/presentation"
)

type AddURLHandler struct {
	adder abstraction.URLAdder
}

func NewAddURLHandler(adder abstraction.URLAdder) *AddURLHandler {
	return &AddURLHandler{
		adder: adder,
	}
}

// HandleAddURL handles POST /api/add-url requests.
func (h *AddURLHandler) HandleAddURL(c echo.Context) error {
	var req dto.AddURLRequest
	if err := c.Bind(&req); err != nil {
		return presentation.WriteFailure(c, &entity.Failure{
			Status:  http.StatusBadRequest,
			Message: "invalid request body",
			Err:     err,
		})
	}

	result, err := h.adder.AddURL(c.Request().Context(), req.Title, req.URL, req.Caption)
	if err != nil {
		return presentation.WriteFailure(c, err)
	}

	return c.JSON(http.StatusOK, dto.CreatePageResponse{
		Success: true,
		PageID:  result.PageID,
	})
}
