package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/shop"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&shop.CartItem{}))
	return db
}

func TestGormCartRepository(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewGormCartRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	productID := uuid.New()

	item, err := shop.NewCartItem(userID, productID, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, item))

	t.Run("should find the line for a user-product combination", func(t *testing.T) {
		found, err := repo.FindByUserAndProduct(ctx, userID, productID)
		require.NoError(t, err)
		assert.Equal(t, item.ID, found.ID)
		assert.Equal(t, int64(2), found.Quantity)
	})

	t.Run("should return not found for another product", func(t *testing.T) {
		_, err := repo.FindByUserAndProduct(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should list only the user's items", func(t *testing.T) {
		second, err := shop.NewCartItem(userID, uuid.New(), 1)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, second))

		stranger, err := shop.NewCartItem(uuid.New(), productID, 5)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, stranger))

		items, err := repo.FindAllForUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("should empty the user's cart and nothing else", func(t *testing.T) {
		require.NoError(t, repo.DeleteAllForUser(ctx, userID))

		items, err := repo.FindAllForUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, items)

		var count int64
		require.NoError(t, db.Model(&shop.CartItem{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
