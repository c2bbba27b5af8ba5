package handler

import (
	"net/http"

	"animalshop-backend/internal/domains/product/model"
	"animalshop-backend/internal/domains/product/service"
	"animalshop-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.Service
}

func NewProductHandler(service service.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// List godoc
// GET /api/v1/products?page=&limit=&category=&featured=
func (h *ProductHandler) List(c *gin.Context) {
	var query model.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	products, meta, err := h.service.List(query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, products, meta)
}

// Get godoc
// GET /api/v1/products/:identifier — accepts a product id or slug
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.service.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// Create godoc
// POST /api/v1/products (admin)
func (h *ProductHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.service.Create(req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// Update godoc
// PUT /api/v1/products/:id (admin)
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.service.Update(id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// Delete godoc
// DELETE /api/v1/products/:id (admin)
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.service.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
