package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	cases := map[string]int{
		"NOT_FOUND":           http.StatusNotFound,
		"UNAUTHORIZED":        http.StatusUnauthorized,
		"FORBIDDEN":           http.StatusForbidden,
		"INSUFFICIENT_STOCK":  http.StatusUnprocessableEntity,
		"ALREADY_RECEIVED":    http.StatusUnprocessableEntity,
		"NOT_PENDING":         http.StatusUnprocessableEntity,
		"EMPTY_CART":          http.StatusUnprocessableEntity,
		"PRODUCT_UNAVAILABLE": http.StatusUnprocessableEntity,
		"PRICE_BELOW_COST":    http.StatusUnprocessableEntity,
		"DUPLICATE_SKU":       http.StatusConflict,
		"DUPLICATE_EMAIL":     http.StatusConflict,
		"INVALID_RUT":         http.StatusBadRequest,
		"INVALID_REASON":      http.StatusBadRequest,
		"INVALID_QUANTITY":    http.StatusBadRequest,
		"ALREADY_SUSPENDED":   http.StatusConflict,
		"SOMETHING_ODD":       http.StatusInternalServerError,
	}

	for code, want := range cases {
		assert.Equal(t, want, GetHTTPStatus(code), code)
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]int{1, 2, 3}, 45, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
