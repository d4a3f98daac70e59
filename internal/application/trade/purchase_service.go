package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/catalog"
	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// PurchaseService handles supplier purchases and their receiving
type PurchaseService struct {
	scope        TransactionScope
	purchaseRepo trade.PurchaseRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(scope TransactionScope, purchaseRepo trade.PurchaseRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *PurchaseService {
	return &PurchaseService{
		scope:        scope,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Create registers a pending purchase with its items
func (s *PurchaseService) Create(ctx context.Context, actor identity.Actor, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	if !actor.Role.CanManageCatalog() {
		return nil, shared.ErrForbidden
	}
	if actor.CompanyID == nil {
		return nil, shared.ErrForbidden
	}

	purchase, err := trade.NewPurchase(*actor.CompanyID, req.SupplierID, req.BranchID, &actor.UserID)
	if err != nil {
		return nil, err
	}
	purchase.SetNotes(req.Notes)

	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !actor.BelongsTo(product.CompanyID) {
			return nil, shared.ErrNotFound
		}
		if err := purchase.AddItem(item.ProductID, item.Quantity, item.UnitCost); err != nil {
			return nil, err
		}
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// Receive marks a purchase as received and moves the purchased quantities
// into the branch's inventory. Records that do not exist yet are created on
// the spot with the default reorder point. Everything happens in one
// transaction; a purchase can only ever be received once.
func (s *PurchaseService) Receive(ctx context.Context, actor identity.Actor, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	if !actor.Role.CanManageCatalog() {
		return nil, shared.ErrForbidden
	}

	var response PurchaseResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		purchase, err := repos.Purchases().FindByID(ctx, purchaseID)
		if err != nil {
			return err
		}
		if !actor.BelongsTo(purchase.CompanyID) {
			return shared.ErrNotFound
		}

		if err := purchase.MarkReceived(); err != nil {
			return err
		}

		reason := fmt.Sprintf("Purchase %s received", purchase.ID)
		for _, item := range purchase.Items {
			record, err := repos.Inventory().GetOrCreate(ctx, purchase.CompanyID, purchase.BranchID, item.ProductID)
			if err != nil {
				return err
			}

			movement, err := record.Adjust(item.Quantity, inventory.MovementTypeInbound, reason, &actor.UserID)
			if err != nil {
				return err
			}

			if err := repos.Inventory().Save(ctx, record); err != nil {
				return err
			}
			if err := repos.Movements().Create(ctx, movement); err != nil {
				return err
			}
		}

		if err := repos.Purchases().Save(ctx, purchase); err != nil {
			return err
		}

		response = ToPurchaseResponse(purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase received",
		zap.String("purchase_id", purchaseID.String()),
		zap.String("user_id", actor.UserID.String()))

	return &response, nil
}

// Cancel cancels a pending purchase
func (s *PurchaseService) Cancel(ctx context.Context, actor identity.Actor, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	if !actor.Role.CanManageCatalog() {
		return nil, shared.ErrForbidden
	}

	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(purchase.CompanyID) {
		return nil, shared.ErrNotFound
	}

	if err := purchase.Cancel(); err != nil {
		return nil, err
	}
	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// Get retrieves a purchase by ID
func (s *PurchaseService) Get(ctx context.Context, actor identity.Actor, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(purchase.CompanyID) {
		return nil, shared.ErrNotFound
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// List retrieves purchases visible to the actor
func (s *PurchaseService) List(ctx context.Context, actor identity.Actor, companyID *uuid.UUID, filter ListFilter) ([]PurchaseResponse, int64, error) {
	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []PurchaseResponse{}, 0, nil
	}

	var (
		purchases []trade.Purchase
		total     int64
		err       error
	)
	if filter.Status != "" {
		status := trade.PurchaseStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown purchase status: "+filter.Status)
		}
		purchases, total, err = s.purchaseRepo.FindByStatus(ctx, scopeID, status, toDomainFilter(filter))
	} else {
		purchases, total, err = s.purchaseRepo.FindAllForCompany(ctx, scopeID, toDomainFilter(filter))
	}
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseResponses(purchases), total, nil
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
	return domainFilter
}
