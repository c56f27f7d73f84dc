package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"truestate/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorHandler is the single boundary that turns an error returned through
// echo into a JSON error body. Internal detail is logged, never sent.
type ErrorHandler struct {
	apiErrors *prometheus.CounterVec
}

// NewErrorHandler registers the API error counter with reg
func NewErrorHandler(reg prometheus.Registerer) *ErrorHandler {
	return &ErrorHandler{
		apiErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

// Handle satisfies echo.HTTPErrorHandler
func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	if echoErr, ok := err.(*echo.HTTPError); ok {
		httpStatus = echoErr.Code
		switch {
		case echoErr.Code == http.StatusNotFound:
			errorResponse = errors.NewNotFoundError(c.Request().Method, c.Request().URL.Path, traceID)
		case echoErr.Code >= http.StatusInternalServerError:
			errorResponse = errors.NewErrorResponse(mapHTTPStatusToErrorCode(echoErr.Code), traceID)
		default:
			errorResponse = errors.NewErrorResponse(
				mapHTTPStatusToErrorCode(echoErr.Code),
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
		}
	} else if validationErrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, fmt.Sprintf("%s %s", fieldErr.Field(), formatValidationError(fieldErr)))
		}
		errorResponse = errors.NewErrorResponse(errors.QueryInvalidParameters, traceID, errors.WithDetails(details...))
		httpStatus = http.StatusBadRequest
	} else {
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	h.apiErrors.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.QueryMalformedRequest
	case http.StatusNotFound:
		return errors.RouteNotFound
	case http.StatusMethodNotAllowed:
		return errors.RouteMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	case http.StatusGatewayTimeout:
		return errors.SystemRequestTimeout
	default:
		return errors.SystemUnexpectedError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "sort_field":
		return "must be one of: date, quantity, customerName"
	case "sort_order":
		return "must be asc or desc"
	case "age_range":
		return "must be a known age range"
	case "filter_field":
		return "must be a known filter field"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
