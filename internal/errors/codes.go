package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Query error codes (QUERY_*)
const (
	QueryInvalidParameters ErrorCode = "QUERY_001"
	QueryMalformedRequest  ErrorCode = "QUERY_002"
	QueryUnknownFilter     ErrorCode = "QUERY_003"
)

// Routing error codes (ROUTE_*)
const (
	RouteNotFound         ErrorCode = "ROUTE_001"
	RouteMethodNotAllowed ErrorCode = "ROUTE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRequestTimeout     ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Query errors
	QueryInvalidParameters: "Invalid query parameters",
	QueryMalformedRequest:  "Malformed request",
	QueryUnknownFilter:     "Unknown filter field",

	// Routing errors
	RouteNotFound:         "Route not found",
	RouteMethodNotAllowed: "Method not allowed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRequestTimeout:     "Request timed out",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
