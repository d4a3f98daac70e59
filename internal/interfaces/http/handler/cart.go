package handler

import (
	"github.com/gin-gonic/gin"

	shopapp "github.com/temucosoft/retail-backend/internal/application/shop"
)

// CartHandler handles the caller's shopping cart
type CartHandler struct {
	BaseHandler
	cartService *shopapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *shopapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItem puts a product into the caller's cart
func (h *CartHandler) AddItem(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req shopapp.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.cartService.AddItem(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// UpdateItem changes the quantity of a cart item
func (h *CartHandler) UpdateItem(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req shopapp.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.cartService.UpdateItem(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// RemoveItem takes a product out of the caller's cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetCart returns the caller's cart with line totals
func (h *CartHandler) GetCart(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Checkout turns the caller's cart into a pending order
func (h *CartHandler) Checkout(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req shopapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.cartService.Checkout(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}
