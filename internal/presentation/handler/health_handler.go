package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediabridge/internal/domain/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth reports liveness only; the external service is not probed.
func (h *HealthHandler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Message: "Server is running",
	})
}
