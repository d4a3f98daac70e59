package inventory

import (
	"context"

	"github.com/temucosoft/retail-backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within a transaction. The record and its movements must always be written
// through the same scope so the audit trail can never drift from the stock.
type TransactionalRepositories interface {
	// Inventory returns the inventory record repository scoped to the current transaction
	Inventory() inventory.InventoryRepository
	// Movements returns the stock movement repository scoped to the current transaction
	Movements() inventory.MovementRepository
}

// NoOpTransactionScope runs functions without a real transaction.
// Useful for tests with in-memory repositories.
type NoOpTransactionScope struct {
	inventoryRepo inventory.InventoryRepository
	movementRepo  inventory.MovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(inventoryRepo inventory.InventoryRepository, movementRepo inventory.MovementRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
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
