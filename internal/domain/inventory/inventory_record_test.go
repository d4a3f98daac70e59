package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

func newTestRecord(t *testing.T) *InventoryRecord {
	t.Helper()
	record, err := NewInventoryRecord(uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)
	return record
}

func TestNewInventoryRecord(t *testing.T) {
	t.Run("should start empty with default reorder point", func(t *testing.T) {
		record := newTestRecord(t)

		assert.EqualValues(t, 0, record.Stock)
		assert.EqualValues(t, DefaultReorderPoint, record.ReorderPoint)
		assert.True(t, record.NeedsReorder())
	})

	t.Run("should reject empty branch ID", func(t *testing.T) {
		_, err := NewInventoryRecord(uuid.New(), uuid.Nil, uuid.New())

		require.Error(t, err)
	})

	t.Run("should reject empty product ID", func(t *testing.T) {
		_, err := NewInventoryRecord(uuid.New(), uuid.New(), uuid.Nil)

		require.Error(t, err)
	})
}

func TestInventoryRecordAdjust(t *testing.T) {
	t.Run("should increase stock and record movement", func(t *testing.T) {
		record := newTestRecord(t)
		userID := uuid.New()

		movement, err := record.Adjust(50, MovementTypeInbound, "Purchase #123 received", &userID)

		require.NoError(t, err)
		assert.EqualValues(t, 50, record.Stock)
		assert.Equal(t, MovementTypeInbound, movement.Type)
		assert.EqualValues(t, 50, movement.Quantity)
		assert.EqualValues(t, 0, movement.PreviousStock)
		assert.EqualValues(t, 50, movement.NewStock)
		assert.Equal(t, record.ID, movement.InventoryID)
		assert.Equal(t, record.CompanyID, movement.CompanyID)
		require.NotNil(t, movement.CreatedByID)
		assert.Equal(t, userID, *movement.CreatedByID)
	})

	t.Run("should decrease stock with negative quantity", func(t *testing.T) {
		record := newTestRecord(t)
		_, err := record.Adjust(50, MovementTypeInbound, "Initial load", nil)
		require.NoError(t, err)

		movement, err := record.Adjust(-20, MovementTypeOutbound, "Sale #77", nil)

		require.NoError(t, err)
		assert.EqualValues(t, 30, record.Stock)
		assert.EqualValues(t, 50, movement.PreviousStock)
		assert.EqualValues(t, 30, movement.NewStock)
		assert.Nil(t, movement.CreatedByID)
	})

	t.Run("should reject adjustment below zero without mutating", func(t *testing.T) {
		record := newTestRecord(t)
		_, err := record.Adjust(10, MovementTypeInbound, "Initial load", nil)
		require.NoError(t, err)

		_, err = record.Adjust(-15, MovementTypeOutbound, "Sale #78", nil)

		require.Error(t, err)
		var stockErr *InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.EqualValues(t, 10, stockErr.Available)
		assert.EqualValues(t, 15, stockErr.Requested)
		assert.EqualValues(t, 5, stockErr.Shortfall())
		assert.EqualValues(t, 10, record.Stock)
	})

	t.Run("should allow draining stock to exactly zero", func(t *testing.T) {
		record := newTestRecord(t)
		_, err := record.Adjust(10, MovementTypeInbound, "Initial load", nil)
		require.NoError(t, err)

		_, err = record.Adjust(-10, MovementTypeOutbound, "Sale #79", nil)

		require.NoError(t, err)
		assert.EqualValues(t, 0, record.Stock)
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		record := newTestRecord(t)

		_, err := record.Adjust(0, MovementTypeAdjustment, "Count", nil)

		require.Error(t, err)
	})

	t.Run("should reject unknown movement type", func(t *testing.T) {
		record := newTestRecord(t)

		_, err := record.Adjust(5, MovementType("restock"), "Count", nil)

		require.Error(t, err)
	})

	t.Run("should reject blank reason", func(t *testing.T) {
		record := newTestRecord(t)

		_, err := record.Adjust(5, MovementTypeAdjustment, "   ", nil)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REASON", domainErr.Code)
	})

	t.Run("movement chain stays consistent across adjustments", func(t *testing.T) {
		record := newTestRecord(t)
		changes := []int64{30, -5, 12, -20, 3}
		var prev int64

		for _, q := range changes {
			movementType := MovementTypeInbound
			if q < 0 {
				movementType = MovementTypeOutbound
			}

			movement, err := record.Adjust(q, movementType, "Cycle count", nil)
			require.NoError(t, err)

			assert.Equal(t, prev, movement.PreviousStock)
			assert.Equal(t, movement.PreviousStock+movement.Quantity, movement.NewStock)
			prev = movement.NewStock
		}

		assert.Equal(t, prev, record.Stock)
	})
}

func TestInventoryRecordReorder(t *testing.T) {
	record := newTestRecord(t)
	_, err := record.Adjust(100, MovementTypeInbound, "Initial load", nil)
	require.NoError(t, err)

	t.Run("should not need reorder above the point", func(t *testing.T) {
		assert.False(t, record.NeedsReorder())
	})

	t.Run("should need reorder at exactly the point", func(t *testing.T) {
		require.NoError(t, record.SetReorderPoint(100))
		assert.True(t, record.NeedsReorder())
	})

	t.Run("should reject negative reorder point", func(t *testing.T) {
		assert.Error(t, record.SetReorderPoint(-1))
	})
}

func TestMovementType(t *testing.T) {
	assert.True(t, MovementTypeInbound.IsValid())
	assert.True(t, MovementTypeReturn.IsValid())
	assert.False(t, MovementType("transfer").IsValid())
	assert.Equal(t, "outbound", MovementTypeOutbound.String())
}
