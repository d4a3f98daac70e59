package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/temucosoft/retail-backend/internal/application/catalog"
)

// CatalogHandler handles product, category and supplier endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *catalogapp.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateProduct adds a product to the catalog
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// UpdateProduct updates a product
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// GetProduct returns a single product
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListProducts returns the products visible to the actor
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	companyID, ok := h.companyScope(c)
	if !ok {
		return
	}

	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, total, err := h.catalogService.ListProducts(c.Request.Context(), actor, companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, filter.Page, filter.PageSize)
}

// DeleteProduct removes a product from the catalog
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateCategory adds a category
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// ListCategories returns the categories visible to the actor
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	companyID, ok := h.companyScope(c)
	if !ok {
		return
	}

	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	categories, total, err := h.catalogService.ListCategories(c.Request.Context(), actor, companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, categories, total, filter.Page, filter.PageSize)
}

// CreateSupplier adds a supplier
func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req catalogapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.catalogService.CreateSupplier(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, supplier)
}

// ListSuppliers returns the suppliers visible to the actor
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	companyID, ok := h.companyScope(c)
	if !ok {
		return
	}

	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	suppliers, total, err := h.catalogService.ListSuppliers(c.Request.Context(), actor, companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, suppliers, total, filter.Page, filter.PageSize)
}
