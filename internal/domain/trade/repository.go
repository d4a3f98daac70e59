package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// PurchaseRepository defines the interface for purchase persistence
type PurchaseRepository interface {
	// Save creates or updates a purchase with its items
	Save(ctx context.Context, purchase *Purchase) error

	// FindByID finds a purchase by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)

	// FindAllForCompany finds all purchases belonging to a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Purchase, int64, error)

	// FindByStatus finds a company's purchases in a given status
	FindByStatus(ctx context.Context, companyID uuid.UUID, status PurchaseStatus, filter shared.Filter) ([]Purchase, int64, error)
}

// SaleRepository defines the interface for sale persistence.
// Sales are final; there is no update.
type SaleRepository interface {
	// Create persists a sale with its items
	Create(ctx context.Context, sale *Sale) error

	// FindByID finds a sale by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAllForCompany finds all sales belonging to a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Sale, int64, error)

	// FindAllForBranch finds all sales recorded at a branch
	FindAllForBranch(ctx context.Context, branchID uuid.UUID, filter shared.Filter) ([]Sale, int64, error)
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Save creates or updates an order with its items
	Save(ctx context.Context, order *Order) error

	// FindByID finds an order by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAllForCompany finds all orders belonging to a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Order, int64, error)

	// FindAllForCustomer finds all orders placed by a customer
	FindAllForCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Order, int64, error)
}
