package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// Save creates or updates a purchase together with its items
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *trade.Purchase) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(purchase).Error
}

// FindByID finds a purchase by its ID, items included
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	var purchase trade.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindAllForCompany finds all purchases belonging to a company
func (r *GormPurchaseRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]trade.Purchase, int64, error) {
	query := scopeCompany(r.db.WithContext(ctx).Model(&trade.Purchase{}).Preload("Items"), companyID)
	if branchID, ok := filter.Filters["branch_id"]; ok {
		query = query.Where("branch_id = ?", branchID)
	}
	if supplierID, ok := filter.Filters["supplier_id"]; ok {
		query = query.Where("supplier_id = ?", supplierID)
	}

	var purchases []trade.Purchase
	total, err := countAndFind(query, filter, &purchases)
	if err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}

// FindByStatus finds purchases in a given status within a company
func (r *GormPurchaseRepository) FindByStatus(ctx context.Context, companyID uuid.UUID, status trade.PurchaseStatus, filter shared.Filter) ([]trade.Purchase, int64, error) {
	query := scopeCompany(r.db.WithContext(ctx).Model(&trade.Purchase{}).Preload("Items"), companyID).
		Where("status = ?", status)

	var purchases []trade.Purchase
	total, err := countAndFind(query, filter, &purchases)
	if err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}

var _ trade.PurchaseRepository = (*GormPurchaseRepository)(nil)
