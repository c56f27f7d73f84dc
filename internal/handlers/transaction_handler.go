package handlers

import (
	"net/http"

	"truestate/internal/dto"
	"truestate/internal/errors"
	"truestate/internal/services"
	"truestate/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	service    services.TransactionServiceInterface
	normalizer *validation.Normalizer
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	service services.TransactionServiceInterface,
	normalizer *validation.Normalizer,
) *TransactionHandler {
	if normalizer == nil {
		normalizer = validation.NewNormalizer(0, 0)
	}
	return &TransactionHandler{
		service:    service,
		normalizer: normalizer,
	}
}

// ListTransactions retrieves one filtered, sorted page of transactions
// @Summary List transactions
// @Description Search, filter, sort and paginate sales transactions. Multi-valued filters are comma separated.
// @Tags Transactions
// @Produce json
// @Param search query string false "Case-insensitive substring of customer name or phone number"
// @Param region query string false "Customer regions, comma separated"
// @Param gender query string false "Genders, comma separated"
// @Param ageRange query string false "Age buckets, comma separated"
// @Param category query string false "Product categories, comma separated"
// @Param tags query string false "Tags, comma separated"
// @Param paymentMethod query string false "Payment methods, comma separated"
// @Param startDate query string false "Inclusive lower date bound"
// @Param endDate query string false "Inclusive upper date bound"
// @Param sortBy query string false "Sort key" Enums(date, quantity, customerName)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "QUERY_002 - Malformed query string"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store unavailable"
// @Router /api/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.ListTransactionsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.QueryMalformedRequest)
	}

	params := h.normalizer.NormalizeListQuery(&query)

	page, err := h.service.ListTransactions(c.Request().Context(), params)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(page))
}
