package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// PurchaseStatus represents the status of a purchase
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusReceived  PurchaseStatus = "received"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

// IsValid checks if the status is a valid PurchaseStatus
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusReceived, PurchaseStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseStatus
func (s PurchaseStatus) String() string {
	return string(s)
}

// PurchaseItem represents a line item in a purchase
type PurchaseItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   int64           `gorm:"not null"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// NewPurchaseItem creates a new purchase line item
func NewPurchaseItem(purchaseID, productID uuid.UUID, quantity int64, unitCost decimal.Decimal) (*PurchaseItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	return &PurchaseItem{
		ID:         uuid.New(),
		PurchaseID: purchaseID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitCost:   unitCost,
		Subtotal:   unitCost.Mul(decimal.NewFromInt(quantity)),
		CreatedAt:  time.Now(),
	}, nil
}

// Purchase is an order placed with a supplier to restock a branch.
// Receiving it is what actually moves stock; a purchase can be received
// exactly once.
type Purchase struct {
	shared.CompanyAggregateRoot
	SupplierID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	BranchID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status      PurchaseStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes       string         `gorm:"type:text"`
	CreatedByID *uuid.UUID     `gorm:"type:uuid"`
	ReceivedAt  *time.Time
	Items       []PurchaseItem `gorm:"foreignKey:PurchaseID;references:ID"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// NewPurchase creates a new pending purchase
func NewPurchase(companyID, supplierID, branchID uuid.UUID, createdBy *uuid.UUID) (*Purchase, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRANCH", "Branch ID cannot be empty")
	}

	return &Purchase{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		SupplierID:           supplierID,
		BranchID:             branchID,
		Status:               PurchaseStatusPending,
		Total:                decimal.Zero,
		CreatedByID:          createdBy,
		Items:                make([]PurchaseItem, 0),
	}, nil
}

// AddItem adds a line item while the purchase is still pending
func (p *Purchase) AddItem(productID uuid.UUID, quantity int64, unitCost decimal.Decimal) error {
	if p.Status != PurchaseStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify a purchase that is not pending")
	}

	item, err := NewPurchaseItem(p.ID, productID, quantity, unitCost)
	if err != nil {
		return err
	}

	p.Items = append(p.Items, *item)
	p.recalculateTotal()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// MarkReceived transitions the purchase to received. Stock application is the
// caller's responsibility and must happen in the same transaction.
func (p *Purchase) MarkReceived() error {
	switch p.Status {
	case PurchaseStatusReceived:
		return shared.NewDomainError("ALREADY_RECEIVED", "Purchase has already been received")
	case PurchaseStatusCancelled:
		return shared.NewDomainError("INVALID_STATE", "Cannot receive a cancelled purchase")
	}
	if len(p.Items) == 0 {
		return shared.NewDomainError("INVALID_STATE", "Cannot receive a purchase without items")
	}

	now := time.Now()
	p.Status = PurchaseStatusReceived
	p.ReceivedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	return nil
}

// Cancel cancels a pending purchase
func (p *Purchase) Cancel() error {
	if p.Status != PurchaseStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending purchases can be cancelled")
	}

	p.Status = PurchaseStatusCancelled
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetNotes sets free-form notes on the purchase
func (p *Purchase) SetNotes(notes string) {
	p.Notes = strings.TrimSpace(notes)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func (p *Purchase) recalculateTotal() {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Subtotal)
	}
	p.Total = total
}
