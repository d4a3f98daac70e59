package inventory

import (
	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// MovementType classifies why stock changed
type MovementType string

const (
	// MovementTypeInbound is stock coming in from a purchase
	MovementTypeInbound MovementType = "inbound"
	// MovementTypeOutbound is stock leaving through a sale or order
	MovementTypeOutbound MovementType = "outbound"
	// MovementTypeAdjustment is a manual correction (count, damage, loss)
	MovementTypeAdjustment MovementType = "adjustment"
	// MovementTypeReturn is stock coming back from a customer
	MovementTypeReturn MovementType = "return"
)

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// IsValid returns true if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeInbound, MovementTypeOutbound, MovementTypeAdjustment, MovementTypeReturn:
		return true
	}
	return false
}

// StockMovement is the immutable audit record of a stock change.
// Quantity is signed; NewStock always equals PreviousStock plus Quantity.
type StockMovement struct {
	shared.BaseEntity
	CompanyID     uuid.UUID    `gorm:"type:uuid;not null;index"`
	InventoryID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	Type          MovementType `gorm:"type:varchar(20);not null"`
	Quantity      int64        `gorm:"not null"`
	PreviousStock int64        `gorm:"not null"`
	NewStock      int64        `gorm:"not null"`
	Reason        string       `gorm:"type:varchar(500);not null"`
	CreatedByID   *uuid.UUID   `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}
