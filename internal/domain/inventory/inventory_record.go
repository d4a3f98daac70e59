package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// DefaultReorderPoint is assigned when a record is created implicitly
// while receiving a purchase.
const DefaultReorderPoint int64 = 10

// InventoryRecord tracks the stock of one product at one branch.
// It is the aggregate root for stock operations; the composite
// identifier is BranchID + ProductID.
type InventoryRecord struct {
	shared.CompanyAggregateRoot
	BranchID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_branch_product,priority:1"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_branch_product,priority:2"`
	Stock        int64     `gorm:"not null;default:0"`
	ReorderPoint int64     `gorm:"not null;default:10"`
}

// TableName returns the table name for GORM
func (InventoryRecord) TableName() string {
	return "inventory_records"
}

// NewInventoryRecord creates an empty inventory record for a branch-product combination
func NewInventoryRecord(companyID, branchID, productID uuid.UUID) (*InventoryRecord, error) {
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRANCH", "Branch ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}

	return &InventoryRecord{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		BranchID:             branchID,
		ProductID:            productID,
		Stock:                0,
		ReorderPoint:         DefaultReorderPoint,
	}, nil
}

// Adjust applies a signed stock change and returns the movement that records
// it. The movement must be persisted in the same transaction as the record.
// A change that would leave stock negative is rejected without mutating
// anything.
func (r *InventoryRecord) Adjust(quantity int64, movementType MovementType, reason string, createdBy *uuid.UUID) (*StockMovement, error) {
	if quantity == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be zero")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type: "+string(movementType))
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "A reason is required for every stock movement")
	}

	newStock := r.Stock + quantity
	if newStock < 0 {
		return nil, &InsufficientStockError{Available: r.Stock, Requested: -quantity}
	}

	movement := &StockMovement{
		BaseEntity:    shared.NewBaseEntity(),
		CompanyID:     r.CompanyID,
		InventoryID:   r.ID,
		Type:          movementType,
		Quantity:      quantity,
		PreviousStock: r.Stock,
		NewStock:      newStock,
		Reason:        reason,
		CreatedByID:   createdBy,
	}

	r.Stock = newStock
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return movement, nil
}

// SetReorderPoint changes the threshold below which the product should be restocked
func (r *InventoryRecord) SetReorderPoint(point int64) error {
	if point < 0 {
		return shared.NewDomainError("INVALID_REORDER_POINT", "Reorder point cannot be negative")
	}

	r.ReorderPoint = point
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// NeedsReorder reports whether stock has fallen to or below the reorder point
func (r *InventoryRecord) NeedsReorder() bool {
	return r.Stock <= r.ReorderPoint
}
