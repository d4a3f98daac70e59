package shop

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/catalog"
	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
	"github.com/temucosoft/retail-backend/internal/domain/shop"
	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// CartService manages a customer's shopping cart and turns it into orders
type CartService struct {
	cartRepo    shop.CartRepository
	productRepo catalog.ProductRepository
	orderRepo   trade.OrderRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(cartRepo shop.CartRepository, productRepo catalog.ProductRepository, orderRepo trade.OrderRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// AddItem puts a product in the actor's cart. Adding a product already in
// the cart raises its quantity instead of creating a second line.
func (s *CartService) AddItem(ctx context.Context, actor identity.Actor, req AddCartItemRequest) (*CartItemResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(product.CompanyID) || !product.Active {
		return nil, shared.ErrNotFound
	}

	item, err := s.cartRepo.FindByUserAndProduct(ctx, actor.UserID, req.ProductID)
	if err == nil {
		if err := item.IncreaseQuantity(req.Quantity); err != nil {
			return nil, err
		}
	} else {
		item, err = shop.NewCartItem(actor.UserID, req.ProductID, req.Quantity)
		if err != nil {
			return nil, err
		}
	}

	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := toCartItemResponse(item, product)
	return &response, nil
}

// UpdateItem replaces the quantity of a cart line
func (s *CartService) UpdateItem(ctx context.Context, actor identity.Actor, itemID uuid.UUID, req UpdateCartItemRequest) (*CartItemResponse, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != actor.UserID {
		return nil, shared.ErrNotFound
	}

	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	response := toCartItemResponse(item, product)
	return &response, nil
}

// RemoveItem deletes a line from the actor's cart
func (s *CartService) RemoveItem(ctx context.Context, actor identity.Actor, itemID uuid.UUID) error {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != actor.UserID {
		return shared.ErrNotFound
	}

	return s.cartRepo.Delete(ctx, itemID)
}

// GetCart returns the actor's cart with subtotals computed from the
// products' current prices.
func (s *CartService) GetCart(ctx context.Context, actor identity.Actor) (*CartResponse, error) {
	items, err := s.cartRepo.FindAllForUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	response := CartResponse{Items: make([]CartItemResponse, 0, len(items))}
	for i := range items {
		product, err := s.productRepo.FindByID(ctx, items[i].ProductID)
		if err != nil {
			return nil, err
		}
		line := toCartItemResponse(&items[i], product)
		response.Items = append(response.Items, line)
		response.Total = response.Total.Add(line.Subtotal)
	}

	return &response, nil
}

// Checkout converts the actor's cart into a pending order at the products'
// current prices and empties the cart. The order waits for a branch to claim
// it; no stock moves here.
func (s *CartService) Checkout(ctx context.Context, actor identity.Actor, req CheckoutRequest) (*OrderSummary, error) {
	if actor.CompanyID == nil {
		return nil, shared.ErrForbidden
	}

	items, err := s.cartRepo.FindAllForUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot check out an empty cart")
	}

	order, err := trade.NewOrder(*actor.CompanyID, actor.UserID, req.ShippingAddress)
	if err != nil {
		return nil, err
	}

	for i := range items {
		product, err := s.productRepo.FindByID(ctx, items[i].ProductID)
		if err != nil {
			return nil, err
		}
		if err := order.AddItem(product.ID, items[i].Quantity, product.Price); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	if err := s.cartRepo.DeleteAllForUser(ctx, actor.UserID); err != nil {
		return nil, err
	}

	s.logger.Info("cart checked out",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", actor.UserID.String()),
		zap.Int("lines", len(order.Items)))

	return &OrderSummary{
		OrderID: order.ID,
		Status:  order.Status.String(),
		Total:   order.Total,
	}, nil
}
