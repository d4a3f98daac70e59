package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// OrderStatus represents the fulfillment status of an online order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can move to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProcessing || target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// OrderItem represents a line item in an online order
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order line item
func NewOrderItem(orderID, productID uuid.UUID, quantity int64, unitPrice decimal.Decimal) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(quantity)),
		CreatedAt: time.Now(),
	}, nil
}

// Order is an online shop order placed by a customer. It starts pending and
// is later claimed by a branch, which deducts stock when processing begins.
type Order struct {
	shared.CompanyAggregateRoot
	CustomerID         uuid.UUID   `gorm:"type:uuid;not null;index"`
	Status             OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	ProcessingBranchID *uuid.UUID  `gorm:"type:uuid"`
	ShippingAddress    string      `gorm:"type:text;not null"`
	Total              decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Items              []OrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order
func NewOrder(companyID, customerID uuid.UUID, shippingAddress string) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	shippingAddress = strings.TrimSpace(shippingAddress)
	if shippingAddress == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address cannot be empty")
	}

	return &Order{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		CustomerID:           customerID,
		Status:               OrderStatusPending,
		ShippingAddress:      shippingAddress,
		Total:                decimal.Zero,
		Items:                make([]OrderItem, 0),
	}, nil
}

// AddItem adds a line item while the order is still pending
func (o *Order) AddItem(productID uuid.UUID, quantity int64, unitPrice decimal.Decimal) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify an order that is not pending")
	}

	item, err := NewOrderItem(o.ID, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.Items = append(o.Items, *item)
	o.Total = o.Total.Add(item.Subtotal)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// StartProcessing claims the order for a branch. Only pending orders can be
// claimed; stock deduction happens in the same transaction.
func (o *Order) StartProcessing(branchID uuid.UUID) error {
	if branchID == uuid.Nil {
		return shared.NewDomainError("INVALID_BRANCH", "Branch ID cannot be empty")
	}
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("NOT_PENDING", "Only pending orders can be processed")
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("INVALID_STATE", "Cannot process an order without items")
	}

	o.Status = OrderStatusProcessing
	o.ProcessingBranchID = &branchID
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// UpdateStatus moves the order along its lifecycle
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+string(target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition order from "+string(o.Status)+" to "+string(target))
	}

	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}
