package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by SKU within a company
	FindBySKU(ctx context.Context, companyID uuid.UUID, sku string) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, int64, error)

	// FindAllForCompany finds all products belonging to a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Product, int64, error)

	// ExistsBySKU checks if a SKU is already taken within a company
	ExistsBySKU(ctx context.Context, companyID uuid.UUID, sku string) (bool, error)

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// FindByID finds a category by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAllForCompany finds all categories belonging to a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Category, int64, error)

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// FindByID finds a supplier by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindAllForCompany finds all suppliers belonging to a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Supplier, int64, error)

	// Delete deletes a supplier
	Delete(ctx context.Context, id uuid.UUID) error
}
