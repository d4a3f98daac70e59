package trade

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/inventory"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// OrderService handles fulfillment of online orders
type OrderService struct {
	scope     TransactionScope
	orderRepo trade.OrderRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(scope TransactionScope, orderRepo trade.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		scope:     scope,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Process claims a pending order for a branch and deducts the stock for every
// line in one transaction. The whole order is checked before anything moves:
// if any line cannot be covered, the response names each shortfall and no
// stock changes.
func (s *OrderService) Process(ctx context.Context, actor identity.Actor, orderID uuid.UUID, req ProcessOrderRequest) (*OrderResponse, error) {
	if !actor.Role.CanProcessOrders() {
		return nil, shared.ErrForbidden
	}

	var response OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !actor.BelongsTo(order.CompanyID) {
			return shared.ErrNotFound
		}
		if order.Status != trade.OrderStatusPending {
			return shared.NewDomainError("NOT_PENDING", "Only pending orders can be processed")
		}

		records := make(map[uuid.UUID]*inventory.InventoryRecord, len(order.Items))
		var shortages []string
		for _, item := range order.Items {
			record, err := repos.Inventory().FindByBranchAndProduct(ctx, req.BranchID, item.ProductID)
			if errors.Is(err, shared.ErrNotFound) {
				shortages = append(shortages,
					fmt.Sprintf("product %s not stocked at branch", item.ProductID))
				continue
			}
			if err != nil {
				return err
			}
			if record.Stock < item.Quantity {
				shortages = append(shortages,
					fmt.Sprintf("product %s short by %d units", item.ProductID, item.Quantity-record.Stock))
				continue
			}
			records[item.ProductID] = record
		}
		if len(shortages) > 0 {
			return shared.NewDomainError("INSUFFICIENT_STOCK",
				"Cannot fulfill order: "+strings.Join(shortages, "; "))
		}

		if err := order.StartProcessing(req.BranchID); err != nil {
			return err
		}

		reason := fmt.Sprintf("Order %s processing", order.ID)
		for _, item := range order.Items {
			record := records[item.ProductID]
			movement, err := record.Adjust(-item.Quantity, inventory.MovementTypeOutbound, reason, &actor.UserID)
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

		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}

		response = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order processing started",
		zap.String("order_id", orderID.String()),
		zap.String("branch_id", req.BranchID.String()),
		zap.String("user_id", actor.UserID.String()))

	return &response, nil
}

// UpdateStatus moves an order along its lifecycle without touching stock
func (s *OrderService) UpdateStatus(ctx context.Context, actor identity.Actor, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	if !actor.Role.CanProcessOrders() {
		return nil, shared.ErrForbidden
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(order.CompanyID) {
		return nil, shared.ErrNotFound
	}

	if err := order.UpdateStatus(trade.OrderStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Get retrieves an order. Customers only see their own orders.
func (s *OrderService) Get(ctx context.Context, actor identity.Actor, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !s.canSee(actor, order) {
		return nil, shared.ErrNotFound
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders visible to the actor. Customers get their own
// orders regardless of any other filter.
func (s *OrderService) List(ctx context.Context, actor identity.Actor, companyID *uuid.UUID, filter ListFilter) ([]OrderResponse, int64, error) {
	if actor.Role == identity.RoleCustomer {
		orders, total, err := s.orderRepo.FindAllForCustomer(ctx, actor.UserID, toDomainFilter(filter))
		if err != nil {
			return nil, 0, err
		}
		return ToOrderResponses(orders), total, nil
	}

	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []OrderResponse{}, 0, nil
	}

	orders, total, err := s.orderRepo.FindAllForCompany(ctx, scopeID, toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

func (s *OrderService) canSee(actor identity.Actor, order *trade.Order) bool {
	if actor.Role == identity.RoleCustomer {
		return actor.UserID == order.CustomerID
	}
	return actor.BelongsTo(order.CompanyID)
}
