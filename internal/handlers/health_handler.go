package handlers

import (
	"context"
	"net/http"
	"time"

	"truestate/internal/dto"
	"truestate/internal/services"

	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	service services.TransactionServiceInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(service services.TransactionServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{service: service}
}

// HealthCheck reports liveness and whether the store answers a ping
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Failure 503 {object} dto.HealthResponse "Store unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.service.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "UNAVAILABLE",
			Message: "Transaction store is unreachable",
		})
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "OK",
		Message: "Server is running",
	})
}
