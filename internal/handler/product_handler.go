package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/repository"
	"github.com/quangtran-dev/storefront-api/internal/service"
)

// ProductHandler handles product catalog requests
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles product listing with search, filter and pagination
func (h *ProductHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	filter := repository.ProductFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	if raw := c.Query("sub_category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "VALIDATION_ERROR",
				Message: "invalid sub_category_id parameter",
			})
			return
		}
		filter.SubCategoryID = &id
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Data:  products,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create handles product creation (admin only)
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// Update handles product modification (admin only)
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateStock handles a signed stock adjustment (admin only)
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.productService.UpdateStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete handles product deletion (admin only)
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Product deleted"})
}
