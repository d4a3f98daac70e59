package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/inventory"
)

// InventoryResponse represents an inventory record in API responses
type InventoryResponse struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	BranchID     uuid.UUID `json:"branch_id"`
	ProductID    uuid.UUID `json:"product_id"`
	Stock        int64     `json:"stock"`
	ReorderPoint int64     `json:"reorder_point"`
	NeedsReorder bool      `json:"needs_reorder"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// ToInventoryResponse converts a domain record to a response
func ToInventoryResponse(record *inventory.InventoryRecord) InventoryResponse {
	return InventoryResponse{
		ID:           record.ID,
		CompanyID:    record.CompanyID,
		BranchID:     record.BranchID,
		ProductID:    record.ProductID,
		Stock:        record.Stock,
		ReorderPoint: record.ReorderPoint,
		NeedsReorder: record.NeedsReorder(),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
		Version:      record.Version,
	}
}

// ToInventoryResponses converts a slice of domain records
func ToInventoryResponses(records []inventory.InventoryRecord) []InventoryResponse {
	responses := make([]InventoryResponse, len(records))
	for i := range records {
		responses[i] = ToInventoryResponse(&records[i])
	}
	return responses
}

// MovementResponse represents a stock movement in API responses
type MovementResponse struct {
	ID            uuid.UUID  `json:"id"`
	InventoryID   uuid.UUID  `json:"inventory_id"`
	Type          string     `json:"type"`
	Quantity      int64      `json:"quantity"`
	PreviousStock int64      `json:"previous_stock"`
	NewStock      int64      `json:"new_stock"`
	Reason        string     `json:"reason"`
	CreatedByID   *uuid.UUID `json:"created_by_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToMovementResponse converts a domain movement to a response
func ToMovementResponse(movement *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            movement.ID,
		InventoryID:   movement.InventoryID,
		Type:          movement.Type.String(),
		Quantity:      movement.Quantity,
		PreviousStock: movement.PreviousStock,
		NewStock:      movement.NewStock,
		Reason:        movement.Reason,
		CreatedByID:   movement.CreatedByID,
		CreatedAt:     movement.CreatedAt,
	}
}

// ToMovementResponses converts a slice of domain movements
func ToMovementResponses(movements []inventory.StockMovement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
	}
	return responses
}

// BranchResponse represents a branch in API responses
type BranchResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBranchResponse converts a domain branch to a response
func ToBranchResponse(branch *inventory.Branch) BranchResponse {
	return BranchResponse{
		ID:        branch.ID,
		CompanyID: branch.CompanyID,
		Name:      branch.Name,
		Address:   branch.Address,
		Phone:     branch.Phone,
		Active:    branch.Active,
		CreatedAt: branch.CreatedAt,
		UpdatedAt: branch.UpdatedAt,
	}
}

// ToBranchResponses converts a slice of domain branches
func ToBranchResponses(branches []inventory.Branch) []BranchResponse {
	responses := make([]BranchResponse, len(branches))
	for i := range branches {
		responses[i] = ToBranchResponse(&branches[i])
	}
	return responses
}

// CreateBranchRequest represents a request to open a branch
type CreateBranchRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
}

// UpdateBranchRequest represents a partial branch update
type UpdateBranchRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Address *string `json:"address"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Active  *bool   `json:"active"`
}

// AdjustStockRequest represents a manual stock adjustment
type AdjustStockRequest struct {
	BranchID  uuid.UUID `json:"branch_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
}

// SetReorderPointRequest changes the reorder threshold of a record
type SetReorderPointRequest struct {
	ReorderPoint int64 `json:"reorder_point" binding:"min=0"`
}

// ListFilter represents filter options for inventory listings
type ListFilter struct {
	BranchID  *uuid.UUID `form:"branch_id"`
	ProductID *uuid.UUID `form:"product_id"`
	Search    string     `form:"search"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
