package trade

import (
	"context"

	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the trade repositories.
// Trade documents move stock, so the scope also exposes the inventory
// repositories: a sale and its stock deduction either both land or neither
// does.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories a trade
// operation may touch within one transaction.
type TransactionalRepositories interface {
	// Purchases returns the purchase repository scoped to the current transaction
	Purchases() trade.PurchaseRepository
	// Sales returns the sale repository scoped to the current transaction
	Sales() trade.SaleRepository
	// Orders returns the order repository scoped to the current transaction
	Orders() trade.OrderRepository
	// Inventory returns the inventory record repository scoped to the current transaction
	Inventory() inventory.InventoryRepository
	// Movements returns the stock movement repository scoped to the current transaction
	Movements() inventory.MovementRepository
}

// NoOpTransactionScope runs functions without a real transaction.
// Useful for tests with in-memory repositories.
type NoOpTransactionScope struct {
	purchaseRepo  trade.PurchaseRepository
	saleRepo      trade.SaleRepository
	orderRepo     trade.OrderRepository
	inventoryRepo inventory.InventoryRepository
	movementRepo  inventory.MovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	purchaseRepo trade.PurchaseRepository,
	saleRepo trade.SaleRepository,
	orderRepo trade.OrderRepository,
	inventoryRepo inventory.InventoryRepository,
	movementRepo inventory.MovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		purchaseRepo:  purchaseRepo,
		saleRepo:      saleRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Purchases returns the purchase repository
func (s *NoOpTransactionScope) Purchases() trade.PurchaseRepository {
	return s.purchaseRepo
}

// Sales returns the sale repository
func (s *NoOpTransactionScope) Sales() trade.SaleRepository {
	return s.saleRepo
}

// Orders returns the order repository
func (s *NoOpTransactionScope) Orders() trade.OrderRepository {
	return s.orderRepo
}

// Inventory returns the inventory record repository
func (s *NoOpTransactionScope) Inventory() inventory.InventoryRepository {
	return s.inventoryRepo
}

// Movements returns the stock movement repository
func (s *NoOpTransactionScope) Movements() inventory.MovementRepository {
	return s.movementRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
