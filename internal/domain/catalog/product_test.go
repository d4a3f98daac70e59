package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	companyID := uuid.New()

	t.Run("should create product with valid pricing", func(t *testing.T) {
		product, err := NewProduct(companyID, "cafe-001", "Café de grano 1kg",
			decimal.NewFromInt(8990), decimal.NewFromInt(5200))

		require.NoError(t, err)
		assert.Equal(t, "CAFE-001", product.SKU)
		assert.Equal(t, companyID, product.CompanyID)
		assert.True(t, product.Active)
		assert.True(t, product.Margin().Equal(decimal.NewFromInt(3790)))
	})

	t.Run("should reject price below cost on creation", func(t *testing.T) {
		_, err := NewProduct(companyID, "CAFE-001", "Café de grano 1kg",
			decimal.NewFromInt(5000), decimal.NewFromInt(5200))

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRICE_BELOW_COST", domainErr.Code)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := NewProduct(companyID, "CAFE-001", "Café",
			decimal.NewFromInt(-1), decimal.Zero)

		require.Error(t, err)
	})

	t.Run("should reject empty SKU", func(t *testing.T) {
		_, err := NewProduct(companyID, "  ", "Café",
			decimal.NewFromInt(100), decimal.Zero)

		require.Error(t, err)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := NewProduct(companyID, "CAFE-001", "",
			decimal.NewFromInt(100), decimal.Zero)

		require.Error(t, err)
	})
}

func TestProductSetPricing(t *testing.T) {
	companyID := uuid.New()
	product, err := NewProduct(companyID, "CAFE-001", "Café de grano 1kg",
		decimal.NewFromInt(8990), decimal.NewFromInt(5200))
	require.NoError(t, err)

	t.Run("should allow price below cost on update", func(t *testing.T) {
		require.NoError(t, product.SetPricing(decimal.NewFromInt(4000), decimal.NewFromInt(5200)))

		assert.True(t, product.PriceBelowCost())
	})

	t.Run("should still reject negative values", func(t *testing.T) {
		assert.Error(t, product.SetPricing(decimal.NewFromInt(-1), decimal.Zero))
	})
}

func TestCategoryAndSupplier(t *testing.T) {
	companyID := uuid.New()

	t.Run("should create category", func(t *testing.T) {
		category, err := NewCategory(companyID, "Abarrotes")

		require.NoError(t, err)
		assert.True(t, category.Active)

		category.Deactivate()
		assert.False(t, category.Active)
	})

	t.Run("should reject empty category name", func(t *testing.T) {
		_, err := NewCategory(companyID, "")

		require.Error(t, err)
	})

	t.Run("should validate supplier RUT", func(t *testing.T) {
		supplier, err := NewSupplier(companyID, "Distribuidora Sur")
		require.NoError(t, err)

		require.NoError(t, supplier.SetRUT("76.086.428-5"))
		assert.Equal(t, "76086428-5", supplier.RUT)

		assert.Error(t, supplier.SetRUT("76.086.428-1"))
	})
}
