package shop

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("should create with positive quantity", func(t *testing.T) {
		item, err := NewCartItem(userID, productID, 2)

		require.NoError(t, err)
		assert.EqualValues(t, 2, item.Quantity)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := NewCartItem(userID, productID, 0)
		require.Error(t, err)

		_, err = NewCartItem(userID, productID, -1)
		require.Error(t, err)
	})

	t.Run("should accumulate quantity", func(t *testing.T) {
		item, err := NewCartItem(userID, productID, 2)
		require.NoError(t, err)

		require.NoError(t, item.IncreaseQuantity(3))
		assert.EqualValues(t, 5, item.Quantity)

		assert.Error(t, item.IncreaseQuantity(0))
	})

	t.Run("should compute subtotal from current price", func(t *testing.T) {
		item, err := NewCartItem(userID, productID, 3)
		require.NoError(t, err)

		subtotal := item.Subtotal(decimal.NewFromInt(4990))

		assert.True(t, subtotal.Equal(decimal.NewFromInt(14970)))
	})
}
