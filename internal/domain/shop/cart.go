package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// CartItem holds a customer's intent to buy a product. There is at most one
// item per user-product pair; adding the same product again raises the
// quantity. No price is stored: the subtotal is always computed from the
// product's current price so stale carts never honor old prices.
type CartItem struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:2"`
	Quantity  int64     `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a cart item
func NewCartItem(userID, productID uuid.UUID, quantity int64) (*CartItem, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// IncreaseQuantity adds to the existing quantity
func (c *CartItem) IncreaseQuantity(by int64) error {
	if by <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	c.Quantity += by
	c.UpdatedAt = time.Now()

	return nil
}

// SetQuantity replaces the quantity
func (c *CartItem) SetQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	c.Quantity = quantity
	c.UpdatedAt = time.Now()

	return nil
}

// Subtotal computes the line total at the given current unit price
func (c *CartItem) Subtotal(unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(c.Quantity))
}
