package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// GormMovementRepository implements MovementRepository using GORM.
// Movements are append-only; this repository exposes no update or delete.
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Create appends a stock movement
func (r *GormMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByInventory finds movements for an inventory record, newest first
func (r *GormMovementRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	query := r.movementQuery(ctx, filter).Where("inventory_id = ?", inventoryID)

	var movements []inventory.StockMovement
	total, err := countAndFind(query, filter, &movements)
	if err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// FindAllForCompany finds movements across a company, newest first
func (r *GormMovementRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	query := r.movementQuery(ctx, filter).Where("company_id = ?", companyID)

	var movements []inventory.StockMovement
	total, err := countAndFind(query, filter, &movements)
	if err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

func (r *GormMovementRepository) movementQuery(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&inventory.StockMovement{})
	if movementType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", movementType)
	}
	if createdBy, ok := filter.Filters["created_by_id"]; ok {
		query = query.Where("created_by_id = ?", createdBy)
	}
	return query
}

var _ inventory.MovementRepository = (*GormMovementRepository)(nil)
