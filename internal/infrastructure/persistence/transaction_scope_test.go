package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appinventory "github.com/temucosoft/retail-backend/internal/application/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
)

func setupScopeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&inventory.InventoryRecord{}, &inventory.StockMovement{})
	require.NoError(t, err)

	return db
}

func TestGormInventoryTransactionScope(t *testing.T) {
	t.Run("should commit record and movement together", func(t *testing.T) {
		db := setupScopeTestDB(t)
		scope := NewGormInventoryTransactionScope(db)
		ctx := context.Background()

		record, err := inventory.NewInventoryRecord(uuid.New(), uuid.New(), uuid.New())
		require.NoError(t, err)

		err = scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
			movement, err := record.Adjust(10, inventory.MovementTypeInbound, "Load", nil)
			if err != nil {
				return err
			}
			if err := repos.Inventory().Save(ctx, record); err != nil {
				return err
			}
			return repos.Movements().Create(ctx, movement)
		})
		require.NoError(t, err)

		var recordCount, movementCount int64
		require.NoError(t, db.Model(&inventory.InventoryRecord{}).Count(&recordCount).Error)
		require.NoError(t, db.Model(&inventory.StockMovement{}).Count(&movementCount).Error)
		assert.Equal(t, int64(1), recordCount)
		assert.Equal(t, int64(1), movementCount)
	})

	t.Run("should roll back everything when the function fails", func(t *testing.T) {
		db := setupScopeTestDB(t)
		scope := NewGormInventoryTransactionScope(db)
		ctx := context.Background()

		record, err := inventory.NewInventoryRecord(uuid.New(), uuid.New(), uuid.New())
		require.NoError(t, err)

		boom := errors.New("boom")
		err = scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
			movement, err := record.Adjust(10, inventory.MovementTypeInbound, "Load", nil)
			if err != nil {
				return err
			}
			if err := repos.Inventory().Save(ctx, record); err != nil {
				return err
			}
			if err := repos.Movements().Create(ctx, movement); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var recordCount, movementCount int64
		require.NoError(t, db.Model(&inventory.InventoryRecord{}).Count(&recordCount).Error)
		require.NoError(t, db.Model(&inventory.StockMovement{}).Count(&movementCount).Error)
		assert.Equal(t, int64(0), recordCount)
		assert.Equal(t, int64(0), movementCount)
	})
}
