package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// InventoryRepository defines the interface for inventory record persistence
type InventoryRepository interface {
	// Save creates or updates an inventory record
	Save(ctx context.Context, record *InventoryRecord) error

	// FindByID finds an inventory record by ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryRecord, error)

	// FindByBranchAndProduct finds the record for a branch-product combination
	FindByBranchAndProduct(ctx context.Context, branchID, productID uuid.UUID) (*InventoryRecord, error)

	// GetOrCreate finds the record for a branch-product combination,
	// creating an empty one with the default reorder point if none exists
	GetOrCreate(ctx context.Context, companyID, branchID, productID uuid.UUID) (*InventoryRecord, error)

	// FindAllForCompany finds all inventory records belonging to a company.
	// A zero company ID spans all companies.
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]InventoryRecord, int64, error)

	// FindAllForBranch finds all inventory records at a branch, restricted
	// to a company unless the company ID is zero
	FindAllForBranch(ctx context.Context, branchID, companyID uuid.UUID, filter shared.Filter) ([]InventoryRecord, int64, error)

	// FindNeedingReorder finds records at or below their reorder point
	FindNeedingReorder(ctx context.Context, companyID uuid.UUID) ([]InventoryRecord, error)

	// Delete deletes an inventory record
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovementRepository defines the interface for stock movement persistence.
// Movements are append-only; there is no update or delete.
type MovementRepository interface {
	// Create appends a stock movement
	Create(ctx context.Context, movement *StockMovement) error

	// FindByInventory finds movements for an inventory record, newest first
	FindByInventory(ctx context.Context, inventoryID uuid.UUID, filter shared.Filter) ([]StockMovement, int64, error)

	// FindAllForCompany finds movements across a company, newest first
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]StockMovement, int64, error)
}

// BranchRepository defines the interface for branch persistence
type BranchRepository interface {
	// Save creates or updates a branch
	Save(ctx context.Context, branch *Branch) error

	// FindByID finds a branch by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Branch, error)

	// FindAllForCompany finds all branches belonging to a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Branch, int64, error)

	// Delete deletes a branch
	Delete(ctx context.Context, id uuid.UUID) error
}
