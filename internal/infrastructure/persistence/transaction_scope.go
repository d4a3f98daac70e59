package persistence

import (
	"context"

	"gorm.io/gorm"

	appinventory "github.com/temucosoft/retail-backend/internal/application/inventory"
	apptrade "github.com/temucosoft/retail-backend/internal/application/trade"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions. Stock and its movement trail are written through
// the same transaction so they commit or roll back together.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryTxRepos{tx: tx})
	})
}

type gormInventoryTxRepos struct {
	tx *gorm.DB
}

// Inventory returns the inventory record repository scoped to the current transaction
func (r *gormInventoryTxRepos) Inventory() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

// Movements returns the stock movement repository scoped to the current transaction
func (r *gormInventoryTxRepos) Movements() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

// GormTradeTransactionScope implements the trade TransactionScope using
// GORM transactions. Trade documents and the stock they move share one
// transaction.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTradeTxRepos{tx: tx})
	})
}

type gormTradeTxRepos struct {
	tx *gorm.DB
}

// Purchases returns the purchase repository scoped to the current transaction
func (r *gormTradeTxRepos) Purchases() trade.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

// Sales returns the sale repository scoped to the current transaction
func (r *gormTradeTxRepos) Sales() trade.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// Orders returns the order repository scoped to the current transaction
func (r *gormTradeTxRepos) Orders() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// Inventory returns the inventory record repository scoped to the current transaction
func (r *gormTradeTxRepos) Inventory() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

// Movements returns the stock movement repository scoped to the current transaction
func (r *gormTradeTxRepos) Movements() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

var _ appinventory.TransactionScope = (*GormInventoryTransactionScope)(nil)
var _ appinventory.TransactionalRepositories = (*gormInventoryTxRepos)(nil)
var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)
var _ apptrade.TransactionalRepositories = (*gormTradeTxRepos)(nil)
