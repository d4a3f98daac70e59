package shop

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/temucosoft/retail-backend/internal/domain/catalog"
	"github.com/temucosoft/retail-backend/internal/domain/shop"
)

// AddCartItemRequest puts a product in the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest replaces a cart line's quantity
type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest turns the cart into an order
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// CartItemResponse is a cart line with the product's current price
type CartItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse is the whole cart
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// OrderSummary is the checkout result
type OrderSummary struct {
	OrderID uuid.UUID       `json:"order_id"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
}

func toCartItemResponse(item *shop.CartItem, product *catalog.Product) CartItemResponse {
	return CartItemResponse{
		ID:          item.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		SKU:         product.SKU,
		Quantity:    item.Quantity,
		UnitPrice:   product.Price,
		Subtotal:    item.Subtotal(product.Price),
	}
}
