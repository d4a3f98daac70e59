package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

func TestNewRUT(t *testing.T) {
	t.Run("should accept valid RUT with dash", func(t *testing.T) {
		rut, err := NewRUT("12345678-5")

		require.NoError(t, err)
		assert.Equal(t, "12345678-5", rut.String())
		assert.Equal(t, "12345678", rut.Body())
		assert.Equal(t, byte('5'), rut.CheckDigit())
	})

	t.Run("should accept valid RUT with dots and dash", func(t *testing.T) {
		rut, err := NewRUT("12.345.678-5")

		require.NoError(t, err)
		assert.Equal(t, "12345678-5", rut.String())
	})

	t.Run("should accept valid RUT without separators", func(t *testing.T) {
		rut, err := NewRUT("123456785")

		require.NoError(t, err)
		assert.Equal(t, "12345678-5", rut.String())
	})

	t.Run("should accept lowercase k check digit", func(t *testing.T) {
		// body 20347878 yields check digit K
		rut, err := NewRUT("20347878-k")

		require.NoError(t, err)
		assert.Equal(t, byte('K'), rut.CheckDigit())
	})

	t.Run("should accept zero check digit", func(t *testing.T) {
		// body 12345658 yields check digit 0
		_, err := NewRUT("12345658-0")

		require.NoError(t, err)
	})

	t.Run("should reject wrong check digit", func(t *testing.T) {
		_, err := NewRUT("12345678-9")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_RUT", domainErr.Code)
		assert.Contains(t, domainErr.Message, "expected 5")
	})

	t.Run("should reject non-numeric body", func(t *testing.T) {
		_, err := NewRUT("12a45678-5")

		require.Error(t, err)
	})

	t.Run("should reject too short input", func(t *testing.T) {
		_, err := NewRUT("5")

		require.Error(t, err)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := NewRUT("")

		require.Error(t, err)
	})
}

func TestExpectedCheckDigit(t *testing.T) {
	tests := []struct {
		body string
		want byte
	}{
		{"12345678", '5'},
		{"20347878", 'K'},
		{"12345658", '0'},
		{"76086428", '5'},
		{"1", '9'},
		{"11111111", '1'},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpectedCheckDigit(tt.body))
		})
	}
}

func TestValidateRUT(t *testing.T) {
	assert.NoError(t, ValidateRUT("12.345.678-5"))
	assert.Error(t, ValidateRUT("12.345.678-4"))
}

func TestRUTEquals(t *testing.T) {
	a, err := NewRUT("12345678-5")
	require.NoError(t, err)
	b, err := NewRUT("12.345.678-5")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.IsEmpty())
	assert.True(t, RUT{}.IsEmpty())
}
