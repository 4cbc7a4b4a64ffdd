package dto

import (
	"net/http"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/clientes/backend/internal/domain/shared"
)

// Error codes returned in the response envelope. Domain codes pass through
// unchanged; the remaining ones originate in the HTTP layer.
const (
	ErrCodeValidation          = shared.CodeValidation
	ErrCodeConflict            = shared.CodeConflict
	ErrCodeNotFound            = shared.CodeNotFound
	ErrCodeIDMismatch          = shared.CodeIDMismatch
	ErrCodeConcurrencyConflict = shared.CodeConcurrencyConflict
	ErrCodeInvalidCPF          = customer.CodeInvalidCPF
	ErrCodeInactiveCustomer    = customer.CodeInactiveCustomer
)

// HTTP layer error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when the body is not valid JSON for the target type
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeForbidden is used when the client may not reach the resource
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	// ErrCodeServiceUnavailable is used when a dependency is down
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Client-correctable input -> 400 Bad Request
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeIDMismatch:       http.StatusBadRequest,
	ErrCodeInvalidCPF:       http.StatusBadRequest,
	ErrCodeInactiveCustomer: http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInvalidJSON:      http.StatusBadRequest,

	// Resource errors
	ErrCodeForbidden:           http.StatusForbidden,
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	ErrCodeRequestTooLarge:    http.StatusRequestEntityTooLarge,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeInternal:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
