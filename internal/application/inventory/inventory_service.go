package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// Service handles inventory business operations
type Service struct {
	scope         TransactionScope
	inventoryRepo inventory.InventoryRepository
	movementRepo  inventory.MovementRepository
	logger        *zap.Logger
}

// NewService creates a new inventory Service
func NewService(scope TransactionScope, inventoryRepo inventory.InventoryRepository, movementRepo inventory.MovementRepository, logger *zap.Logger) *Service {
	return &Service{
		scope:         scope,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		logger:        logger,
	}
}

// Get retrieves the inventory record for a branch-product combination
func (s *Service) Get(ctx context.Context, actor identity.Actor, branchID, productID uuid.UUID) (*InventoryResponse, error) {
	record, err := s.inventoryRepo.FindByBranchAndProduct(ctx, branchID, productID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(record.CompanyID) {
		return nil, shared.ErrNotFound
	}

	response := ToInventoryResponse(record)
	return &response, nil
}

// List retrieves inventory records visible to the actor. Platform admins
// span all companies unless they name one; everyone else is pinned to their
// own company.
func (s *Service) List(ctx context.Context, actor identity.Actor, companyID *uuid.UUID, filter ListFilter) ([]InventoryResponse, int64, error) {
	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []InventoryResponse{}, 0, nil
	}

	domainFilter := toDomainFilter(filter)

	var (
		records []inventory.InventoryRecord
		total   int64
		err     error
	)
	if filter.BranchID != nil {
		records, total, err = s.inventoryRepo.FindAllForBranch(ctx, *filter.BranchID, scopeID, domainFilter)
	} else {
		records, total, err = s.inventoryRepo.FindAllForCompany(ctx, scopeID, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	return ToInventoryResponses(records), total, nil
}

// ListNeedingReorder retrieves records at or below their reorder point
func (s *Service) ListNeedingReorder(ctx context.Context, actor identity.Actor, companyID *uuid.UUID) ([]InventoryResponse, error) {
	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []InventoryResponse{}, nil
	}

	records, err := s.inventoryRepo.FindNeedingReorder(ctx, scopeID)
	if err != nil {
		return nil, err
	}

	return ToInventoryResponses(records), nil
}

// ListMovements retrieves the movement history of an inventory record, newest first
func (s *Service) ListMovements(ctx context.Context, actor identity.Actor, inventoryID uuid.UUID, filter ListFilter) ([]MovementResponse, int64, error) {
	record, err := s.inventoryRepo.FindByID(ctx, inventoryID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.BelongsTo(record.CompanyID) {
		return nil, 0, shared.ErrNotFound
	}

	movements, total, err := s.movementRepo.FindByInventory(ctx, inventoryID, toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	return ToMovementResponses(movements), total, nil
}

// AdjustStock applies a manual stock correction. The record and the movement
// that documents it are written in one transaction.
func (s *Service) AdjustStock(ctx context.Context, actor identity.Actor, req AdjustStockRequest) (*InventoryResponse, error) {
	if !actor.Role.CanAdjustStock() {
		return nil, shared.ErrForbidden
	}

	var response InventoryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		record, err := repos.Inventory().FindByBranchAndProduct(ctx, req.BranchID, req.ProductID)
		if err != nil {
			return err
		}
		if !actor.BelongsTo(record.CompanyID) {
			return shared.ErrNotFound
		}

		movement, err := record.Adjust(req.Quantity, inventory.MovementTypeAdjustment, req.Reason, &actor.UserID)
		if err != nil {
			return err
		}

		if err := repos.Inventory().Save(ctx, record); err != nil {
			return err
		}
		if err := repos.Movements().Create(ctx, movement); err != nil {
			return err
		}

		response = ToInventoryResponse(record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock adjusted",
		zap.String("branch_id", req.BranchID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.Int64("quantity", req.Quantity),
		zap.String("user_id", actor.UserID.String()))

	return &response, nil
}

// SetReorderPoint changes the reorder threshold of a record
func (s *Service) SetReorderPoint(ctx context.Context, actor identity.Actor, recordID uuid.UUID, point int64) (*InventoryResponse, error) {
	if !actor.Role.CanAdjustStock() {
		return nil, shared.ErrForbidden
	}

	record, err := s.inventoryRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(record.CompanyID) {
		return nil, shared.ErrNotFound
	}

	if err := record.SetReorderPoint(point); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToInventoryResponse(record)
	return &response, nil
}

// resolveCompanyScope decides which company a read operation runs against.
// Company-bound actors are always pinned to their own company no matter what
// they ask for. Platform admins span all companies unless they name one; the
// zero UUID means no company filter. The bool reports whether the actor can
// see anything at all: an actor with no company and no platform role cannot,
// and gets an empty result set rather than an error.
func resolveCompanyScope(actor identity.Actor, requested *uuid.UUID) (uuid.UUID, bool) {
	if actor.AllAccess() {
		if requested != nil {
			return *requested, true
		}
		return uuid.Nil, true
	}
	if actor.CompanyID == nil {
		return uuid.Nil, false
	}
	return *actor.CompanyID, true
}

func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.ProductID != nil {
		domainFilter.Filters["product_id"] = *filter.ProductID
	}
	return domainFilter
}
