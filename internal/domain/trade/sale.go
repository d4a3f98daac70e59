package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodTransfer   PaymentMethod = "transfer"
)

// IsValid checks if the payment method is known
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodDebitCard, PaymentMethodCreditCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// SaleItem represents a line item in a point-of-sale transaction
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// NewSaleItem creates a new sale line item
func NewSaleItem(saleID, productID uuid.UUID, quantity int64, unitPrice decimal.Decimal) (*SaleItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &SaleItem{
		ID:        uuid.New(),
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(quantity)),
		CreatedAt: time.Now(),
	}, nil
}

// Sale is a completed point-of-sale transaction at a branch.
// It is recorded after payment, so it has no pending state; the stock
// deduction happens in the same transaction that persists it.
type Sale struct {
	shared.CompanyAggregateRoot
	BranchID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SoldByID      *uuid.UUID      `gorm:"type:uuid"`
	Items         []SaleItem      `gorm:"foreignKey:SaleID;references:ID"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a new sale
func NewSale(companyID, branchID uuid.UUID, paymentMethod PaymentMethod, soldBy *uuid.UUID) (*Sale, error) {
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRANCH", "Branch ID cannot be empty")
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method: "+string(paymentMethod))
	}

	return &Sale{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		BranchID:             branchID,
		PaymentMethod:        paymentMethod,
		Total:                decimal.Zero,
		SoldByID:             soldBy,
		Items:                make([]SaleItem, 0),
	}, nil
}

// AddItem adds a line item and keeps the total in sync
func (s *Sale) AddItem(productID uuid.UUID, quantity int64, unitPrice decimal.Decimal) error {
	item, err := NewSaleItem(s.ID, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	s.Items = append(s.Items, *item)
	s.Total = s.Total.Add(item.Subtotal)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
