package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/catalog"
	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// SaleService records point-of-sale transactions
type SaleService struct {
	scope       TransactionScope
	saleRepo    trade.SaleRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewSaleService creates a new SaleService
func NewSaleService(scope TransactionScope, saleRepo trade.SaleRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *SaleService {
	return &SaleService{
		scope:       scope,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create registers a completed sale and deducts stock in the same
// transaction. A product that has no inventory record at the branch cannot be
// sold; unlike receiving, nothing is created implicitly here.
func (s *SaleService) Create(ctx context.Context, actor identity.Actor, req CreateSaleRequest) (*SaleResponse, error) {
	if !actor.Role.CanRecordSales() {
		return nil, shared.ErrForbidden
	}
	if actor.CompanyID == nil {
		return nil, shared.ErrForbidden
	}

	sale, err := trade.NewSale(*actor.CompanyID, req.BranchID, trade.PaymentMethod(req.PaymentMethod), &actor.UserID)
	if err != nil {
		return nil, err
	}

	var response SaleResponse
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, line := range req.Items {
			product, err := s.productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if !actor.BelongsTo(product.CompanyID) {
				return shared.ErrNotFound
			}

			record, err := repos.Inventory().FindByBranchAndProduct(ctx, req.BranchID, line.ProductID)
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("PRODUCT_UNAVAILABLE",
					fmt.Sprintf("Product %s is not stocked at this branch", product.SKU))
			}
			if err != nil {
				return err
			}

			if err := sale.AddItem(line.ProductID, line.Quantity, product.Price); err != nil {
				return err
			}

			reason := fmt.Sprintf("Sale %s", sale.ID)
			movement, err := record.Adjust(-line.Quantity, inventory.MovementTypeOutbound, reason, &actor.UserID)
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

		if err := repos.Sales().Create(ctx, sale); err != nil {
			return err
		}

		response = ToSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID.String()),
		zap.String("branch_id", req.BranchID.String()),
		zap.String("total", sale.Total.String()))

	return &response, nil
}

// Get retrieves a sale by ID
func (s *SaleService) Get(ctx context.Context, actor identity.Actor, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(sale.CompanyID) {
		return nil, shared.ErrNotFound
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves sales visible to the actor
func (s *SaleService) List(ctx context.Context, actor identity.Actor, companyID *uuid.UUID, filter ListFilter) ([]SaleResponse, int64, error) {
	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []SaleResponse{}, 0, nil
	}

	sales, total, err := s.saleRepo.FindAllForCompany(ctx, scopeID, toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	return ToSaleResponses(sales), total, nil
}
