package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// Product is a sellable item in the company's catalog.
// Stock is not held here; it lives per branch in the inventory records.
type Product struct {
	shared.CompanyAggregateRoot
	SKU         string          `gorm:"type:varchar(50);not null;index:idx_products_company_sku,unique,composite:company_id"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierID  *uuid.UUID      `gorm:"type:uuid;index"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	Active      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product. The sale price must cover the cost;
// selling below cost on a new product is almost always a data entry error.
func NewProduct(companyID uuid.UUID, sku, name string, price, cost decimal.Decimal) (*Product, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePricing(price, cost); err != nil {
		return nil, err
	}
	if price.LessThan(cost) {
		return nil, shared.NewDomainError("PRICE_BELOW_COST", "Sale price cannot be below cost")
	}

	return &Product{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		SKU:                  sku,
		Name:                 strings.TrimSpace(name),
		Price:                price,
		Cost:                 cost,
		Active:               true,
	}, nil
}

// Rename changes the product name
func (p *Product) Rename(name string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetDescription sets the product description
func (p *Product) SetDescription(description string) {
	p.Description = strings.TrimSpace(description)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetPricing updates price and cost. Unlike creation, a price below cost is
// allowed here so existing products can be cleared out at a loss.
func (p *Product) SetPricing(price, cost decimal.Decimal) error {
	if err := validatePricing(price, cost); err != nil {
		return err
	}

	p.Price = price
	p.Cost = cost
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// PriceBelowCost reports whether the product is currently priced at a loss
func (p *Product) PriceBelowCost() bool {
	return p.Price.LessThan(p.Cost)
}

// Margin returns the absolute margin per unit
func (p *Product) Margin() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

// SetCategory assigns the product to a category
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetSupplier assigns the product's default supplier
func (p *Product) SetSupplier(supplierID *uuid.UUID) {
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetImageURL sets the product image
func (p *Product) SetImageURL(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}

	p.ImageURL = url
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate removes the product from sale
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate puts the product back on sale
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePricing(price, cost decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}
	return nil
}
