package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

func newTestPurchase(t *testing.T) *Purchase {
	t.Helper()
	purchase, err := NewPurchase(uuid.New(), uuid.New(), uuid.New(), nil)
	require.NoError(t, err)
	return purchase
}

func TestPurchaseLifecycle(t *testing.T) {
	t.Run("should accumulate total from items", func(t *testing.T) {
		purchase := newTestPurchase(t)

		require.NoError(t, purchase.AddItem(uuid.New(), 10, decimal.NewFromInt(500)))
		require.NoError(t, purchase.AddItem(uuid.New(), 3, decimal.NewFromInt(1200)))

		assert.True(t, purchase.Total.Equal(decimal.NewFromInt(8600)))
		assert.Len(t, purchase.Items, 2)
	})

	t.Run("should receive a pending purchase once", func(t *testing.T) {
		purchase := newTestPurchase(t)
		require.NoError(t, purchase.AddItem(uuid.New(), 10, decimal.NewFromInt(500)))

		require.NoError(t, purchase.MarkReceived())
		assert.Equal(t, PurchaseStatusReceived, purchase.Status)
		assert.NotNil(t, purchase.ReceivedAt)

		err := purchase.MarkReceived()
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_RECEIVED", domainErr.Code)
	})

	t.Run("should not receive a cancelled purchase", func(t *testing.T) {
		purchase := newTestPurchase(t)
		require.NoError(t, purchase.AddItem(uuid.New(), 1, decimal.NewFromInt(100)))
		require.NoError(t, purchase.Cancel())

		err := purchase.MarkReceived()

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("should not receive an empty purchase", func(t *testing.T) {
		purchase := newTestPurchase(t)

		assert.Error(t, purchase.MarkReceived())
	})

	t.Run("should not modify a received purchase", func(t *testing.T) {
		purchase := newTestPurchase(t)
		require.NoError(t, purchase.AddItem(uuid.New(), 1, decimal.NewFromInt(100)))
		require.NoError(t, purchase.MarkReceived())

		assert.Error(t, purchase.AddItem(uuid.New(), 1, decimal.NewFromInt(100)))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		purchase := newTestPurchase(t)

		assert.Error(t, purchase.AddItem(uuid.New(), 0, decimal.NewFromInt(100)))
		assert.Error(t, purchase.AddItem(uuid.New(), -5, decimal.NewFromInt(100)))
	})
}

func TestSale(t *testing.T) {
	companyID := uuid.New()
	branchID := uuid.New()

	t.Run("should compute subtotal and total", func(t *testing.T) {
		sale, err := NewSale(companyID, branchID, PaymentMethodCash, nil)
		require.NoError(t, err)

		require.NoError(t, sale.AddItem(uuid.New(), 2, decimal.NewFromInt(8990)))
		require.NoError(t, sale.AddItem(uuid.New(), 1, decimal.NewFromInt(1500)))

		assert.True(t, sale.Total.Equal(decimal.NewFromInt(19480)))
		assert.True(t, sale.Items[0].Subtotal.Equal(decimal.NewFromInt(17980)))
	})

	t.Run("should reject unknown payment method", func(t *testing.T) {
		_, err := NewSale(companyID, branchID, PaymentMethod("check"), nil)

		require.Error(t, err)
	})
}

func TestOrderLifecycle(t *testing.T) {
	companyID := uuid.New()
	customerID := uuid.New()
	branchID := uuid.New()

	newOrderWithItem := func(t *testing.T) *Order {
		t.Helper()
		order, err := NewOrder(companyID, customerID, "Av. Alemania 0671, Temuco")
		require.NoError(t, err)
		require.NoError(t, order.AddItem(uuid.New(), 2, decimal.NewFromInt(5000)))
		return order
	}

	t.Run("should start pending with no branch", func(t *testing.T) {
		order := newOrderWithItem(t)

		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Nil(t, order.ProcessingBranchID)
	})

	t.Run("should claim the order for a branch", func(t *testing.T) {
		order := newOrderWithItem(t)

		require.NoError(t, order.StartProcessing(branchID))

		assert.Equal(t, OrderStatusProcessing, order.Status)
		require.NotNil(t, order.ProcessingBranchID)
		assert.Equal(t, branchID, *order.ProcessingBranchID)
	})

	t.Run("should not process twice", func(t *testing.T) {
		order := newOrderWithItem(t)
		require.NoError(t, order.StartProcessing(branchID))

		err := order.StartProcessing(branchID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_PENDING", domainErr.Code)
	})

	t.Run("should not process an empty order", func(t *testing.T) {
		order, err := NewOrder(companyID, customerID, "Av. Alemania 0671, Temuco")
		require.NoError(t, err)

		assert.Error(t, order.StartProcessing(branchID))
	})

	t.Run("should follow the status lifecycle", func(t *testing.T) {
		order := newOrderWithItem(t)
		require.NoError(t, order.StartProcessing(branchID))

		require.NoError(t, order.UpdateStatus(OrderStatusShipped))
		require.NoError(t, order.UpdateStatus(OrderStatusDelivered))

		assert.Error(t, order.UpdateStatus(OrderStatusCancelled))
	})

	t.Run("should not skip from pending to shipped", func(t *testing.T) {
		order := newOrderWithItem(t)

		assert.Error(t, order.UpdateStatus(OrderStatusShipped))
	})

	t.Run("should not modify a processing order", func(t *testing.T) {
		order := newOrderWithItem(t)
		require.NoError(t, order.StartProcessing(branchID))

		assert.Error(t, order.AddItem(uuid.New(), 1, decimal.NewFromInt(1000)))
	})

	t.Run("should reject empty shipping address", func(t *testing.T) {
		_, err := NewOrder(companyID, customerID, "  ")

		require.Error(t, err)
	})
}
