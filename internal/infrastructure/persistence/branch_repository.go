package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// GormBranchRepository implements BranchRepository using GORM
type GormBranchRepository struct {
	db *gorm.DB
}

// NewGormBranchRepository creates a new GormBranchRepository
func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

// Save creates or updates a branch
func (r *GormBranchRepository) Save(ctx context.Context, branch *inventory.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

// FindByID finds a branch by its ID
func (r *GormBranchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Branch, error) {
	var branch inventory.Branch
	if err := r.db.WithContext(ctx).First(&branch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &branch, nil
}

// FindAllForCompany finds all branches belonging to a company
func (r *GormBranchRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]inventory.Branch, int64, error) {
	query := scopeCompany(r.db.WithContext(ctx).Model(&inventory.Branch{}), companyID)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var branches []inventory.Branch
	total, err := countAndFind(query, filter, &branches)
	if err != nil {
		return nil, 0, err
	}
	return branches, total, nil
}

// Delete deletes a branch
func (r *GormBranchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Branch{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ inventory.BranchRepository = (*GormBranchRepository)(nil)
