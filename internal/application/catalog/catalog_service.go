package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temucosoft/retail-backend/internal/domain/catalog"
	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/domain/shared"
)

// Service handles catalog management: products, categories and suppliers
type Service struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	supplierRepo catalog.SupplierRepository
	logger       *zap.Logger
}

// NewService creates a new catalog Service
func NewService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository, supplierRepo catalog.SupplierRepository, logger *zap.Logger) *Service {
	return &Service{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// CreateProduct adds a product to the actor's catalog
func (s *Service) CreateProduct(ctx context.Context, actor identity.Actor, req CreateProductRequest) (*ProductResponse, error) {
	if !actor.Role.CanManageCatalog() {
		return nil, shared.ErrForbidden
	}
	if actor.CompanyID == nil {
		return nil, shared.ErrForbidden
	}

	exists, err := s.productRepo.ExistsBySKU(ctx, *actor.CompanyID, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_SKU", "A product with this SKU already exists")
	}

	product, err := catalog.NewProduct(*actor.CompanyID, req.SKU, req.Name, req.Price, req.Cost)
	if err != nil {
		return nil, err
	}
	product.SetDescription(req.Description)
	product.SetCategory(req.CategoryID)
	product.SetSupplier(req.SupplierID)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// UpdateProduct changes a product. A price dropped below cost is allowed but
// logged, so loss-making prices leave a trace.
func (s *Service) UpdateProduct(ctx context.Context, actor identity.Actor, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if !actor.Role.CanManageCatalog() {
		return nil, shared.ErrForbidden
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(product.CompanyID) {
		return nil, shared.ErrNotFound
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}
	if req.Price != nil || req.Cost != nil {
		price := product.Price
		cost := product.Cost
		if req.Price != nil {
			price = *req.Price
		}
		if req.Cost != nil {
			cost = *req.Cost
		}
		if err := product.SetPricing(price, cost); err != nil {
			return nil, err
		}
		if product.PriceBelowCost() {
			s.logger.Warn("product priced below cost",
				zap.String("product_id", product.ID.String()),
				zap.String("sku", product.SKU),
				zap.String("price", price.String()),
				zap.String("cost", cost.String()))
		}
	}
	if req.CategoryID != nil {
		product.SetCategory(req.CategoryID)
	}
	if req.SupplierID != nil {
		product.SetSupplier(req.SupplierID)
	}
	if req.Active != nil {
		if *req.Active {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetProduct retrieves a product by ID
func (s *Service) GetProduct(ctx context.Context, actor identity.Actor, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !actor.BelongsTo(product.CompanyID) {
		return nil, shared.ErrNotFound
	}

	response := ToProductResponse(product)
	return &response, nil
}

// ListProducts retrieves products visible to the actor
func (s *Service) ListProducts(ctx context.Context, actor identity.Actor, companyID *uuid.UUID, filter ListFilter) ([]ProductResponse, int64, error) {
	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []ProductResponse{}, 0, nil
	}

	products, total, err := s.productRepo.FindAllForCompany(ctx, scopeID, toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// DeleteProduct removes a product from the catalog
func (s *Service) DeleteProduct(ctx context.Context, actor identity.Actor, productID uuid.UUID) error {
	if !actor.Role.CanManageCatalog() {
		return shared.ErrForbidden
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !actor.BelongsTo(product.CompanyID) {
		return shared.ErrNotFound
	}

	return s.productRepo.Delete(ctx, productID)
}

// CreateCategory adds a category
func (s *Service) CreateCategory(ctx context.Context, actor identity.Actor, req CreateCategoryRequest) (*CategoryResponse, error) {
	if !actor.Role.CanManageCatalog() {
		return nil, shared.ErrForbidden
	}
	if actor.CompanyID == nil {
		return nil, shared.ErrForbidden
	}

	category, err := catalog.NewCategory(*actor.CompanyID, req.Name)
	if err != nil {
		return nil, err
	}
	category.SetDescription(req.Description)

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// ListCategories retrieves categories visible to the actor
func (s *Service) ListCategories(ctx context.Context, actor identity.Actor, companyID *uuid.UUID, filter ListFilter) ([]CategoryResponse, int64, error) {
	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []CategoryResponse{}, 0, nil
	}

	categories, total, err := s.categoryRepo.FindAllForCompany(ctx, scopeID, toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses, total, nil
}

// CreateSupplier adds a supplier
func (s *Service) CreateSupplier(ctx context.Context, actor identity.Actor, req CreateSupplierRequest) (*SupplierResponse, error) {
	if !actor.Role.CanManageCatalog() {
		return nil, shared.ErrForbidden
	}
	if actor.CompanyID == nil {
		return nil, shared.ErrForbidden
	}

	supplier, err := catalog.NewSupplier(*actor.CompanyID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := supplier.SetRUT(req.RUT); err != nil {
		return nil, err
	}
	if err := supplier.SetContact(req.ContactName, req.ContactPhone, req.ContactEmail); err != nil {
		return nil, err
	}
	supplier.SetAddress(req.Address)

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// ListSuppliers retrieves suppliers visible to the actor
func (s *Service) ListSuppliers(ctx context.Context, actor identity.Actor, companyID *uuid.UUID, filter ListFilter) ([]SupplierResponse, int64, error) {
	scopeID, visible := resolveCompanyScope(actor, companyID)
	if !visible {
		return []SupplierResponse{}, 0, nil
	}

	suppliers, total, err := s.supplierRepo.FindAllForCompany(ctx, scopeID, toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses, total, nil
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
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}
	return domainFilter
}
