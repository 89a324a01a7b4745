package dto

import (
	"net/http"
	"strings"
)

// General error codes used by the HTTP layer itself
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeNotFound:     http.StatusNotFound,

	// Uniqueness conflicts -> 409 Conflict
	"ALREADY_EXISTS": http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	"RELATIONSHIP_VIOLATION": http.StatusUnprocessableEntity,
	"EMPTY_PROMPT":           http.StatusUnprocessableEntity,
	"UNRESOLVED_TENANT":      http.StatusUnprocessableEntity,

	// Outbound dependency failures -> 502 Bad Gateway
	"EXTERNAL_SERVICE": http.StatusBadGateway,

	// Input errors -> 400 Bad Request
	"INVALID_INPUT": http.StatusBadRequest,
	"VALIDATION":    http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// DUPLICATE_* codes carry the conflicting field name as a suffix and
// INVALID_* codes name the rejected field, so both are matched by
// prefix. Unknown codes answer 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "DUPLICATE_") {
		return http.StatusConflict
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
