package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// Save creates or updates a company
	Save(ctx context.Context, company *Company) error

	// FindByID finds a company by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)

	// FindByRUT finds a company by its tax identifier
	FindByRUT(ctx context.Context, rut string) (*Company, error)

	// FindAll finds all companies matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Company, int64, error)

	// ExistsByRUT checks if a company with the given RUT exists
	ExistsByRUT(ctx context.Context, rut string) (bool, error)

	// Delete deletes a company
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll finds all users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, int64, error)

	// FindAllForCompany finds all users belonging to a company
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]User, int64, error)

	// ExistsByEmail checks if an email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete deletes a user
	Delete(ctx context.Context, id uuid.UUID) error
}
