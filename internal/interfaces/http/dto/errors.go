package dto

import (
	"net/http"
	"strings"
)

// Error codes used by the HTTP layer itself
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall through to the prefix rules in GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeInternal:     http.StatusInternalServerError,

	// State conflicts -> 422 Unprocessable Entity
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"NOT_PENDING":         http.StatusUnprocessableEntity,
	"ALREADY_RECEIVED":    http.StatusUnprocessableEntity,
	"EMPTY_CART":          http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":  http.StatusUnprocessableEntity,
	"PRODUCT_UNAVAILABLE": http.StatusUnprocessableEntity,
	"PRICE_BELOW_COST":    http.StatusUnprocessableEntity,

	// Uniqueness conflicts -> 409 Conflict
	"ALREADY_EXISTS":  http.StatusConflict,
	"DUPLICATE_SKU":   http.StatusConflict,
	"DUPLICATE_EMAIL": http.StatusConflict,
	"DUPLICATE_RUT":   http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// INVALID_* codes map to 400, ALREADY_*/DUPLICATE_* to 409, anything
// unknown to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "ALREADY_"), strings.HasPrefix(code, "DUPLICATE_"):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
