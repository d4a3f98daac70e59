package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// GormSaleRepository implements SaleRepository using GORM.
// Sales are immutable once recorded, so there is no update path.
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create records a sale together with its items
func (r *GormSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// FindByID finds a sale by its ID, items included
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAllForCompany finds all sales belonging to a company
func (r *GormSaleRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]trade.Sale, int64, error) {
	query := scopeCompany(r.saleQuery(ctx, filter), companyID)

	var sales []trade.Sale
	total, err := countAndFind(query, filter, &sales)
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// FindAllForBranch finds all sales recorded at a branch
func (r *GormSaleRepository) FindAllForBranch(ctx context.Context, branchID uuid.UUID, filter shared.Filter) ([]trade.Sale, int64, error) {
	query := r.saleQuery(ctx, filter).Where("branch_id = ?", branchID)

	var sales []trade.Sale
	total, err := countAndFind(query, filter, &sales)
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func (r *GormSaleRepository) saleQuery(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&trade.Sale{}).Preload("Items")
	if paymentMethod, ok := filter.Filters["payment_method"]; ok {
		query = query.Where("payment_method = ?", paymentMethod)
	}
	if soldBy, ok := filter.Filters["sold_by_id"]; ok {
		query = query.Where("sold_by_id = ?", soldBy)
	}
	return query
}

var _ trade.SaleRepository = (*GormSaleRepository)(nil)
