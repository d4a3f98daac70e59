package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

func setupTradeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&trade.Purchase{}, &trade.PurchaseItem{},
		&trade.Sale{}, &trade.SaleItem{},
		&trade.Order{}, &trade.OrderItem{},
	)
	require.NoError(t, err)

	return db
}

func TestGormPurchaseRepository(t *testing.T) {
	db := setupTradeTestDB(t)
	repo := NewGormPurchaseRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	createdBy := uuid.New()

	purchase, err := trade.NewPurchase(companyID, uuid.New(), uuid.New(), &createdBy)
	require.NoError(t, err)
	require.NoError(t, purchase.AddItem(uuid.New(), 10, decimal.NewFromInt(2500)))
	require.NoError(t, purchase.AddItem(uuid.New(), 4, decimal.NewFromInt(990)))

	require.NoError(t, repo.Save(ctx, purchase))

	t.Run("should load purchase with items", func(t *testing.T) {
		found, err := repo.FindByID(ctx, purchase.ID)
		require.NoError(t, err)
		assert.Len(t, found.Items, 2)
		assert.True(t, found.Total.Equal(decimal.NewFromInt(28960)))
		assert.Equal(t, trade.PurchaseStatusPending, found.Status)
	})

	t.Run("should persist a status change", func(t *testing.T) {
		found, err := repo.FindByID(ctx, purchase.ID)
		require.NoError(t, err)
		require.NoError(t, found.MarkReceived())
		require.NoError(t, repo.Save(ctx, found))

		reloaded, err := repo.FindByID(ctx, purchase.ID)
		require.NoError(t, err)
		assert.Equal(t, trade.PurchaseStatusReceived, reloaded.Status)
		assert.NotNil(t, reloaded.ReceivedAt)
	})

	t.Run("should find by status within a company", func(t *testing.T) {
		received, total, err := repo.FindByStatus(ctx, companyID, trade.PurchaseStatusReceived, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, received, 1)
		assert.Len(t, received[0].Items, 2)

		pending, total, err := repo.FindByStatus(ctx, companyID, trade.PurchaseStatusPending, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, pending)
	})

	t.Run("should not leak purchases across companies", func(t *testing.T) {
		purchases, total, err := repo.FindAllForCompany(ctx, uuid.New(), shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, purchases)
	})
}

func TestGormSaleRepository(t *testing.T) {
	db := setupTradeTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	branchID := uuid.New()
	soldBy := uuid.New()

	sale, err := trade.NewSale(companyID, branchID, trade.PaymentMethodCash, &soldBy)
	require.NoError(t, err)
	require.NoError(t, sale.AddItem(uuid.New(), 3, decimal.NewFromInt(8990)))

	require.NoError(t, repo.Create(ctx, sale))

	t.Run("should load sale with items", func(t *testing.T) {
		found, err := repo.FindByID(ctx, sale.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.True(t, found.Total.Equal(decimal.NewFromInt(26970)))
		assert.Equal(t, trade.PaymentMethodCash, found.PaymentMethod)
	})

	t.Run("should list sales for a branch", func(t *testing.T) {
		sales, total, err := repo.FindAllForBranch(ctx, branchID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, sales, 1)
	})

	t.Run("should filter by payment method", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["payment_method"] = trade.PaymentMethodTransfer
		sales, total, err := repo.FindAllForCompany(ctx, companyID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, sales)
	})
}

func TestGormOrderRepository(t *testing.T) {
	db := setupTradeTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	customerID := uuid.New()

	order, err := trade.NewOrder(companyID, customerID, "Av. Alemania 671, Temuco")
	require.NoError(t, err)
	require.NoError(t, order.AddItem(uuid.New(), 2, decimal.NewFromInt(5740)))

	require.NoError(t, repo.Save(ctx, order))

	t.Run("should load order with items", func(t *testing.T) {
		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, trade.OrderStatusPending, found.Status)
		assert.True(t, found.Total.Equal(decimal.NewFromInt(11480)))
	})

	t.Run("should persist a processed order", func(t *testing.T) {
		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		branchID := uuid.New()
		require.NoError(t, found.StartProcessing(branchID))
		require.NoError(t, repo.Save(ctx, found))

		reloaded, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, trade.OrderStatusProcessing, reloaded.Status)
		require.NotNil(t, reloaded.ProcessingBranchID)
		assert.Equal(t, branchID, *reloaded.ProcessingBranchID)
	})

	t.Run("should list orders for a customer only", func(t *testing.T) {
		orders, total, err := repo.FindAllForCustomer(ctx, customerID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, orders, 1)

		other, total, err := repo.FindAllForCustomer(ctx, uuid.New(), shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, other)
	})
}
