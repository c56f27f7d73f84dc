package handlers

import (
	"net/http"

	"truestate/internal/dto"
	"truestate/internal/errors"
	"truestate/internal/models"
	"truestate/internal/services"

	"github.com/labstack/echo/v4"
)

// FilterOptionsHandler serves the selectable values of the filter fields
type FilterOptionsHandler struct {
	service services.FilterOptionsServiceInterface
}

// NewFilterOptionsHandler creates a new filter options handler
func NewFilterOptionsHandler(service services.FilterOptionsServiceInterface) *FilterOptionsHandler {
	return &FilterOptionsHandler{service: service}
}

// GetFilterOptions returns the distinct values of every filter field
// @Summary Filter options
// @Tags Filters
// @Produce json
// @Success 200 {object} dto.FilterOptionsResponse
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store unavailable"
// @Router /api/filters/options [get]
func (h *FilterOptionsHandler) GetFilterOptions(c echo.Context) error {
	options, err := h.service.GetFilterOptions(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewFilterOptionsResponse(options))
}

// GetFieldOptions returns the distinct values of a single filter field
// @Summary Filter options for one field
// @Tags Filters
// @Produce json
// @Param field path string true "Filter field" Enums(region, gender, ageRange, category, tags, paymentMethod)
// @Success 200 {object} dto.FieldOptionsResponse
// @Failure 400 {object} errors.ErrorResponse "QUERY_003 - Unknown filter field"
// @Router /api/filters/options/{field} [get]
func (h *FilterOptionsHandler) GetFieldOptions(c echo.Context) error {
	var req dto.FieldOptionsRequest
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return SendError(c, errors.QueryMalformedRequest)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.QueryUnknownFilter, errors.WithDetails(req.Field))
	}

	values, err := h.service.DistinctValues(c.Request().Context(), models.FilterField(req.Field))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewFieldOptionsResponse(req.Field, values))
}
