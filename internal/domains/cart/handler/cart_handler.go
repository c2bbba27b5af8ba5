package handler

import (
	"net/http"

	"animalshop-backend/internal/domains/cart/model"
	"animalshop-backend/internal/domains/cart/service"
	orderservice "animalshop-backend/internal/domains/order/service"
	"animalshop-backend/internal/shared/middleware"
	"animalshop-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	service service.Service
	orders  orderservice.Service
}

func NewCartHandler(service service.Service, orders orderservice.Service) *CartHandler {
	return &CartHandler{service: service, orders: orders}
}

// resolveOwner maps the request identity onto a cart owner: an
// authenticated user wins over a guest header.
func resolveOwner(c *gin.Context) (model.Owner, bool) {
	if userID, ok := middleware.GetAuthenticatedUserID(c); ok {
		return model.UserOwner(userID), true
	}
	if guestID := middleware.GetGuestID(c); guestID != "" {
		return model.GuestOwner(guestID), true
	}
	return model.Owner{}, false
}

// Get godoc
// GET /api/v1/cart
func (h *CartHandler) Get(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		response.BadRequest(c, "A user token or X-Guest-Id header is required")
		return
	}

	cart, err := h.service.Get(owner)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// AddItem godoc
// POST /api/v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		response.BadRequest(c, "A user token or X-Guest-Id header is required")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.service.AddItem(owner, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// UpdateItem godoc
// PATCH /api/v1/cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		response.BadRequest(c, "A user token or X-Guest-Id header is required")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.service.UpdateItem(owner, productID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// RemoveItem godoc
// DELETE /api/v1/cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		response.BadRequest(c, "A user token or X-Guest-Id header is required")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	cart, err := h.service.RemoveItem(owner, productID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// Clear godoc
// DELETE /api/v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		response.BadRequest(c, "A user token or X-Guest-Id header is required")
		return
	}

	if err := h.service.Clear(owner); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Cart cleared"})
}

// SetShippingAddress godoc
// PUT /api/v1/cart/shipping-address (auth only)
func (h *CartHandler) SetShippingAddress(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		response.BadRequest(c, "A user token or X-Guest-Id header is required")
		return
	}

	var req model.SetShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Validation failed", err)
		return
	}

	cart, err := h.service.SetShippingAddress(owner, req.AddressID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// Checkout godoc
// POST /api/v1/cart/checkout (auth only)
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetAuthenticatedUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orders.Checkout(userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}
