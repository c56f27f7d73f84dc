package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"truestate/internal/errors"
	"truestate/internal/services"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// 1. SendError - client errors with a known code (4xx)
// 2. SendServiceError - maps a service error onto a code; 5xx bodies stay generic
// 3. SendSystemError - anything unexpected; the detail is logged, never returned

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	logInternal(c, errorResponse, internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError classifies an error returned by the services layer
func SendServiceError(c echo.Context, err error) error {
	traceID := getTraceID(c)

	switch {
	case stderrors.Is(err, services.ErrInvalidQuery):
		return SendError(c, errors.QueryInvalidParameters)

	case stderrors.Is(err, services.ErrStoreUnavailable):
		errorResponse, internal := errors.WrapUnavailableError(err, traceID)
		logInternal(c, errorResponse, internal)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)

	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		errorResponse := errors.NewErrorResponse(errors.SystemRequestTimeout, traceID)
		logInternal(c, errorResponse, err)
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)

	default:
		return SendSystemError(c, err)
	}
}

func logInternal(c echo.Context, errorResponse *errors.ErrorResponse, err error) {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", errorResponse.Error.TraceID,
		"error_code", errorResponse.Error.Code,
		"path", c.Request().URL.Path,
		"error", err.Error(),
	)
}
