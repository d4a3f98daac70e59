package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

type memInventoryRepo struct {
	records map[uuid.UUID]*inventory.InventoryRecord
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{records: make(map[uuid.UUID]*inventory.InventoryRecord)}
}

func (r *memInventoryRepo) Save(_ context.Context, record *inventory.InventoryRecord) error {
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *memInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.InventoryRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	clone := *record
	return &clone, nil
}

func (r *memInventoryRepo) FindByBranchAndProduct(_ context.Context, branchID, productID uuid.UUID) (*inventory.InventoryRecord, error) {
	for _, record := range r.records {
		if record.BranchID == branchID && record.ProductID == productID {
			clone := *record
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memInventoryRepo) GetOrCreate(ctx context.Context, companyID, branchID, productID uuid.UUID) (*inventory.InventoryRecord, error) {
	if record, err := r.FindByBranchAndProduct(ctx, branchID, productID); err == nil {
		return record, nil
	}
	record, err := inventory.NewInventoryRecord(companyID, branchID, productID)
	if err != nil {
		return nil, err
	}
	if err := r.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *memInventoryRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, _ shared.Filter) ([]inventory.InventoryRecord, int64, error) {
	var out []inventory.InventoryRecord
	for _, record := range r.records {
		if companyID == uuid.Nil || record.CompanyID == companyID {
			out = append(out, *record)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memInventoryRepo) FindAllForBranch(_ context.Context, branchID, companyID uuid.UUID, _ shared.Filter) ([]inventory.InventoryRecord, int64, error) {
	var out []inventory.InventoryRecord
	for _, record := range r.records {
		if record.BranchID != branchID {
			continue
		}
		if companyID == uuid.Nil || record.CompanyID == companyID {
			out = append(out, *record)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memInventoryRepo) FindNeedingReorder(_ context.Context, companyID uuid.UUID) ([]inventory.InventoryRecord, error) {
	var out []inventory.InventoryRecord
	for _, record := range r.records {
		if (companyID == uuid.Nil || record.CompanyID == companyID) && record.NeedsReorder() {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (r *memInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.records, id)
	return nil
}

type memMovementRepo struct {
	movements []inventory.StockMovement
}

func (r *memMovementRepo) Create(_ context.Context, movement *inventory.StockMovement) error {
	r.movements = append(r.movements, *movement)
	return nil
}

func (r *memMovementRepo) FindByInventory(_ context.Context, inventoryID uuid.UUID, _ shared.Filter) ([]inventory.StockMovement, int64, error) {
	var out []inventory.StockMovement
	for _, m := range r.movements {
		if m.InventoryID == inventoryID {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memMovementRepo) FindAllForCompany(_ context.Context, companyID uuid.UUID, _ shared.Filter) ([]inventory.StockMovement, int64, error) {
	var out []inventory.StockMovement
	for _, m := range r.movements {
		if m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

type serviceFixture struct {
	service   *Service
	inventory *memInventoryRepo
	movements *memMovementRepo
	companyID uuid.UUID
	branchID  uuid.UUID
	productID uuid.UUID
	manager   identity.Actor
}

func newServiceFixture(t *testing.T, initialStock int64) *serviceFixture {
	t.Helper()

	inventoryRepo := newMemInventoryRepo()
	movementRepo := &memMovementRepo{}
	companyID := uuid.New()
	branchID := uuid.New()
	productID := uuid.New()

	record, err := inventory.NewInventoryRecord(companyID, branchID, productID)
	require.NoError(t, err)
	if initialStock > 0 {
		_, err = record.Adjust(initialStock, inventory.MovementTypeInbound, "Initial load", nil)
		require.NoError(t, err)
	}
	require.NoError(t, inventoryRepo.Save(context.Background(), record))

	scope := NewNoOpTransactionScope(inventoryRepo, movementRepo)

	return &serviceFixture{
		service:   NewService(scope, inventoryRepo, movementRepo, zap.NewNop()),
		inventory: inventoryRepo,
		movements: movementRepo,
		companyID: companyID,
		branchID:  branchID,
		productID: productID,
		manager:   identity.Actor{UserID: uuid.New(), CompanyID: &companyID, Role: identity.RoleManager},
	}
}

func TestServiceAdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("should apply adjustment and persist movement", func(t *testing.T) {
		f := newServiceFixture(t, 50)

		response, err := f.service.AdjustStock(ctx, f.manager, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: f.productID,
			Quantity:  -8,
			Reason:    "Damaged in storage",
		})

		require.NoError(t, err)
		assert.EqualValues(t, 42, response.Stock)

		require.Len(t, f.movements.movements, 1)
		movement := f.movements.movements[0]
		assert.Equal(t, inventory.MovementTypeAdjustment, movement.Type)
		assert.EqualValues(t, -8, movement.Quantity)
		assert.EqualValues(t, 50, movement.PreviousStock)
		assert.EqualValues(t, 42, movement.NewStock)
		require.NotNil(t, movement.CreatedByID)
		assert.Equal(t, f.manager.UserID, *movement.CreatedByID)

		stored, err := f.inventory.FindByBranchAndProduct(ctx, f.branchID, f.productID)
		require.NoError(t, err)
		assert.EqualValues(t, 42, stored.Stock)
	})

	t.Run("should refuse adjustment below zero and write nothing", func(t *testing.T) {
		f := newServiceFixture(t, 5)

		_, err := f.service.AdjustStock(ctx, f.manager, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: f.productID,
			Quantity:  -9,
			Reason:    "Cycle count",
		})

		require.Error(t, err)
		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Empty(t, f.movements.movements)

		stored, err := f.inventory.FindByBranchAndProduct(ctx, f.branchID, f.productID)
		require.NoError(t, err)
		assert.EqualValues(t, 5, stored.Stock)
	})

	t.Run("failed adjustments leave the sequence untouched", func(t *testing.T) {
		f := newServiceFixture(t, 50)

		_, err := f.service.AdjustStock(ctx, f.manager, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: f.productID,
			Quantity:  0,
			Reason:    "Cycle count",
		})
		require.Error(t, err)

		response, err := f.service.AdjustStock(ctx, f.manager, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: f.productID,
			Quantity:  -20,
			Reason:    "Cycle count",
		})
		require.NoError(t, err)
		assert.EqualValues(t, 30, response.Stock)

		_, err = f.service.AdjustStock(ctx, f.manager, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: f.productID,
			Quantity:  -40,
			Reason:    "Cycle count",
		})
		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)

		stored, err := f.inventory.FindByBranchAndProduct(ctx, f.branchID, f.productID)
		require.NoError(t, err)
		assert.EqualValues(t, 30, stored.Stock)
		assert.Len(t, f.movements.movements, 1)
	})

	t.Run("should refuse salesperson", func(t *testing.T) {
		f := newServiceFixture(t, 50)
		salesperson := identity.Actor{UserID: uuid.New(), CompanyID: &f.companyID, Role: identity.RoleSalesperson}

		_, err := f.service.AdjustStock(ctx, salesperson, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: f.productID,
			Quantity:  1,
			Reason:    "Found one",
		})

		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("should hide records of other companies", func(t *testing.T) {
		f := newServiceFixture(t, 50)
		otherCompany := uuid.New()
		outsider := identity.Actor{UserID: uuid.New(), CompanyID: &otherCompany, Role: identity.RoleCompanyAdmin}

		_, err := f.service.AdjustStock(ctx, outsider, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: f.productID,
			Quantity:  1,
			Reason:    "Found one",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should fail for missing record instead of creating one", func(t *testing.T) {
		f := newServiceFixture(t, 50)

		_, err := f.service.AdjustStock(ctx, f.manager, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: uuid.New(),
			Quantity:  10,
			Reason:    "Found some",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestServiceReads(t *testing.T) {
	ctx := context.Background()

	t.Run("should list only the actor's company", func(t *testing.T) {
		f := newServiceFixture(t, 50)

		foreign, err := inventory.NewInventoryRecord(uuid.New(), uuid.New(), uuid.New())
		require.NoError(t, err)
		require.NoError(t, f.inventory.Save(ctx, foreign))

		responses, total, err := f.service.List(ctx, f.manager, nil, ListFilter{})

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, responses, 1)
		assert.Equal(t, f.companyID, responses[0].CompanyID)
	})

	t.Run("super admin spans all companies unless one is named", func(t *testing.T) {
		f := newServiceFixture(t, 50)
		admin := identity.Actor{UserID: uuid.New(), Role: identity.RoleSuperAdmin}

		foreign, err := inventory.NewInventoryRecord(uuid.New(), uuid.New(), uuid.New())
		require.NoError(t, err)
		require.NoError(t, f.inventory.Save(ctx, foreign))

		responses, total, err := f.service.List(ctx, admin, nil, ListFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, responses, 2)

		responses, total, err = f.service.List(ctx, admin, &f.companyID, ListFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, responses, 1)
		assert.Equal(t, f.companyID, responses[0].CompanyID)
	})

	t.Run("actor without a company sees an empty listing", func(t *testing.T) {
		f := newServiceFixture(t, 50)
		drifter := identity.Actor{UserID: uuid.New(), Role: identity.RoleManager}

		responses, total, err := f.service.List(ctx, drifter, nil, ListFilter{})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, responses)

		reorder, err := f.service.ListNeedingReorder(ctx, drifter, nil)
		require.NoError(t, err)
		assert.Empty(t, reorder)
	})

	t.Run("branch listing neither returns nor counts foreign rows", func(t *testing.T) {
		f := newServiceFixture(t, 50)

		foreign, err := inventory.NewInventoryRecord(uuid.New(), f.branchID, uuid.New())
		require.NoError(t, err)
		require.NoError(t, f.inventory.Save(ctx, foreign))

		responses, total, err := f.service.List(ctx, f.manager, nil, ListFilter{BranchID: &f.branchID})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, responses, 1)
		assert.Equal(t, f.companyID, responses[0].CompanyID)
	})

	t.Run("should report records needing reorder", func(t *testing.T) {
		f := newServiceFixture(t, 5)

		responses, err := f.service.ListNeedingReorder(ctx, f.manager, nil)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.True(t, responses[0].NeedsReorder)
	})

	t.Run("should expose movement history", func(t *testing.T) {
		f := newServiceFixture(t, 50)

		_, err := f.service.AdjustStock(ctx, f.manager, AdjustStockRequest{
			BranchID:  f.branchID,
			ProductID: f.productID,
			Quantity:  -3,
			Reason:    "Breakage",
		})
		require.NoError(t, err)

		record, err := f.inventory.FindByBranchAndProduct(ctx, f.branchID, f.productID)
		require.NoError(t, err)

		movements, total, err := f.service.ListMovements(ctx, f.manager, record.ID, ListFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, movements, 1)
		assert.Equal(t, "Breakage", movements[0].Reason)
	})
}
