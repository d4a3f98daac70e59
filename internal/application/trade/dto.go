package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/temucosoft/retail-backend/internal/domain/trade"
)

// PurchaseItemRequest is a line in a purchase creation request
type PurchaseItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost" binding:"required"`
}

// CreatePurchaseRequest creates a pending purchase
type CreatePurchaseRequest struct {
	SupplierID uuid.UUID             `json:"supplier_id" binding:"required"`
	BranchID   uuid.UUID             `json:"branch_id" binding:"required"`
	Notes      string                `json:"notes"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseItemResponse represents a purchase line in API responses
type PurchaseItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse represents a purchase in API responses
type PurchaseResponse struct {
	ID         uuid.UUID              `json:"id"`
	CompanyID  uuid.UUID              `json:"company_id"`
	SupplierID uuid.UUID              `json:"supplier_id"`
	BranchID   uuid.UUID              `json:"branch_id"`
	Status     string                 `json:"status"`
	Total      decimal.Decimal        `json:"total"`
	Notes      string                 `json:"notes,omitempty"`
	ReceivedAt *time.Time             `json:"received_at,omitempty"`
	Items      []PurchaseItemResponse `json:"items"`
	CreatedAt  time.Time              `json:"created_at"`
}

// ToPurchaseResponse converts a domain purchase to a response
func ToPurchaseResponse(purchase *trade.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(purchase.Items))
	for i, item := range purchase.Items {
		items[i] = PurchaseItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Subtotal:  item.Subtotal,
		}
	}
	return PurchaseResponse{
		ID:         purchase.ID,
		CompanyID:  purchase.CompanyID,
		SupplierID: purchase.SupplierID,
		BranchID:   purchase.BranchID,
		Status:     purchase.Status.String(),
		Total:      purchase.Total,
		Notes:      purchase.Notes,
		ReceivedAt: purchase.ReceivedAt,
		Items:      items,
		CreatedAt:  purchase.CreatedAt,
	}
}

// ToPurchaseResponses converts a slice of domain purchases
func ToPurchaseResponses(purchases []trade.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}

// SaleItemRequest is a line in a sale creation request
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest registers a completed point-of-sale transaction
type CreateSaleRequest struct {
	BranchID      uuid.UUID         `json:"branch_id" binding:"required"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash debit_card credit_card transfer"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemResponse represents a sale line in API responses
type SaleItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	CompanyID     uuid.UUID          `json:"company_id"`
	BranchID      uuid.UUID          `json:"branch_id"`
	PaymentMethod string             `json:"payment_method"`
	Total         decimal.Decimal    `json:"total"`
	SoldByID      *uuid.UUID         `json:"sold_by_id,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ToSaleResponse converts a domain sale to a response
func ToSaleResponse(sale *trade.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	return SaleResponse{
		ID:            sale.ID,
		CompanyID:     sale.CompanyID,
		BranchID:      sale.BranchID,
		PaymentMethod: sale.PaymentMethod.String(),
		Total:         sale.Total,
		SoldByID:      sale.SoldByID,
		Items:         items,
		CreatedAt:     sale.CreatedAt,
	}
}

// ToSaleResponses converts a slice of domain sales
func ToSaleResponses(sales []trade.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}

// ProcessOrderRequest claims a pending order for a branch
type ProcessOrderRequest struct {
	BranchID uuid.UUID `json:"branch_id" binding:"required"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=processing shipped delivered cancelled"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	CompanyID          uuid.UUID           `json:"company_id"`
	CustomerID         uuid.UUID           `json:"customer_id"`
	Status             string              `json:"status"`
	ProcessingBranchID *uuid.UUID          `json:"processing_branch_id,omitempty"`
	ShippingAddress    string              `json:"shipping_address"`
	Total              decimal.Decimal     `json:"total"`
	Items              []OrderItemResponse `json:"items"`
	CreatedAt          time.Time           `json:"created_at"`
}

// ToOrderResponse converts a domain order to a response
func ToOrderResponse(order *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	return OrderResponse{
		ID:                 order.ID,
		CompanyID:          order.CompanyID,
		CustomerID:         order.CustomerID,
		Status:             order.Status.String(),
		ProcessingBranchID: order.ProcessingBranchID,
		ShippingAddress:    order.ShippingAddress,
		Total:              order.Total,
		Items:              items,
		CreatedAt:          order.CreatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// ListFilter represents filter options for trade listings
type ListFilter struct {
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
