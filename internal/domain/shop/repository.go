package shop

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// Save creates or updates a cart item
	Save(ctx context.Context, item *CartItem) error

	// FindByID finds a cart item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CartItem, error)

	// FindByUserAndProduct finds the cart item for a user-product pair
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*CartItem, error)

	// FindAllForUser finds a user's whole cart
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]CartItem, error)

	// Delete removes a cart item
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAllForUser empties a user's cart
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}
