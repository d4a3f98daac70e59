package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Save creates or updates an inventory record
func (r *GormInventoryRepository) Save(ctx context.Context, record *inventory.InventoryRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// FindByID finds an inventory record by its ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryRecord, error) {
	var record inventory.InventoryRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByBranchAndProduct finds the record for a branch-product combination
func (r *GormInventoryRepository) FindByBranchAndProduct(ctx context.Context, branchID, productID uuid.UUID) (*inventory.InventoryRecord, error) {
	var record inventory.InventoryRecord
	if err := r.db.WithContext(ctx).
		Where("branch_id = ? AND product_id = ?", branchID, productID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// GetOrCreate finds the record for a branch-product combination, creating
// an empty one if none exists. The insert uses ON CONFLICT DO NOTHING so
// two concurrent callers converge on the same row.
func (r *GormInventoryRepository) GetOrCreate(ctx context.Context, companyID, branchID, productID uuid.UUID) (*inventory.InventoryRecord, error) {
	record, err := r.FindByBranchAndProduct(ctx, branchID, productID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	fresh, err := inventory.NewInventoryRecord(companyID, branchID, productID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fresh).Error; err != nil {
		return nil, err
	}

	return r.FindByBranchAndProduct(ctx, branchID, productID)
}

// FindAllForCompany finds all inventory records belonging to a company.
// A zero company ID lists records across all companies.
func (r *GormInventoryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]inventory.InventoryRecord, int64, error) {
	query := scopeCompany(r.inventoryQuery(ctx, filter), companyID)

	var records []inventory.InventoryRecord
	total, err := countAndFind(query, filter, &records)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindAllForBranch finds all inventory records at a branch, restricted to
// the given company unless it is the zero UUID
func (r *GormInventoryRepository) FindAllForBranch(ctx context.Context, branchID, companyID uuid.UUID, filter shared.Filter) ([]inventory.InventoryRecord, int64, error) {
	query := scopeCompany(r.inventoryQuery(ctx, filter).Where("branch_id = ?", branchID), companyID)

	var records []inventory.InventoryRecord
	total, err := countAndFind(query, filter, &records)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindNeedingReorder finds records at or below their reorder point
func (r *GormInventoryRepository) FindNeedingReorder(ctx context.Context, companyID uuid.UUID) ([]inventory.InventoryRecord, error) {
	var records []inventory.InventoryRecord
	query := scopeCompany(r.db.WithContext(ctx), companyID)
	if err := query.
		Where("stock <= reorder_point").
		Order("stock ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Delete deletes an inventory record
func (r *GormInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.InventoryRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormInventoryRepository) inventoryQuery(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&inventory.InventoryRecord{})
	if branchID, ok := filter.Filters["branch_id"]; ok {
		query = query.Where("branch_id = ?", branchID)
	}
	if productID, ok := filter.Filters["product_id"]; ok {
		query = query.Where("product_id = ?", productID)
	}
	if needsReorder, ok := filter.Filters["needs_reorder"]; ok && needsReorder == true {
		query = query.Where("stock <= reorder_point")
	}
	return query
}

var _ inventory.InventoryRepository = (*GormInventoryRepository)(nil)
