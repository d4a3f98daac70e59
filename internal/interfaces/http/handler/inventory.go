package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/temucosoft/retail-backend/internal/application/inventory"
)

// InventoryHandler handles inventory and branch endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.Service
	branchService    *inventoryapp.BranchService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.Service, branchService *inventoryapp.BranchService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, branchService: branchService}
}

// Get returns the inventory record for a branch-product combination
func (h *InventoryHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		h.BadRequest(c, "branch_id must be a valid UUID")
		return
	}
	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		h.BadRequest(c, "product_id must be a valid UUID")
		return
	}

	record, err := h.inventoryService.Get(c.Request.Context(), actor, branchID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// List returns the inventory records visible to the actor
func (h *InventoryHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	companyID, ok := h.companyScope(c)
	if !ok {
		return
	}

	var filter inventoryapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	records, total, err := h.inventoryService.List(c.Request.Context(), actor, companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, total, filter.Page, filter.PageSize)
}

// ListNeedingReorder returns records at or below their reorder point
func (h *InventoryHandler) ListNeedingReorder(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	companyID, ok := h.companyScope(c)
	if !ok {
		return
	}

	records, err := h.inventoryService.ListNeedingReorder(c.Request.Context(), actor, companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// ListMovements returns the movement history of an inventory record
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var filter inventoryapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movements, total, err := h.inventoryService.ListMovements(c.Request.Context(), actor, id, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, movements, total, filter.Page, filter.PageSize)
}

// AdjustStock applies a manual stock correction
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.inventoryService.AdjustStock(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// SetReorderPoint changes the reorder threshold of a record
func (h *InventoryHandler) SetReorderPoint(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req inventoryapp.SetReorderPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.inventoryService.SetReorderPoint(c.Request.Context(), actor, id, req.ReorderPoint)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// CreateBranch opens a new branch
func (h *InventoryHandler) CreateBranch(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req inventoryapp.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	branch, err := h.branchService.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, branch)
}

// UpdateBranch changes branch details
func (h *InventoryHandler) UpdateBranch(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req inventoryapp.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	branch, err := h.branchService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, branch)
}

// GetBranch returns a single branch
func (h *InventoryHandler) GetBranch(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	branch, err := h.branchService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, branch)
}

// ListBranches returns the branches visible to the actor
func (h *InventoryHandler) ListBranches(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	companyID, ok := h.companyScope(c)
	if !ok {
		return
	}

	var filter inventoryapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	branches, total, err := h.branchService.List(c.Request.Context(), actor, companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, branches, total, filter.Page, filter.PageSize)
}
