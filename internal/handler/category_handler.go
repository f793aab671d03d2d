package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/service"
)

// CategoryHandler handles category and subcategory requests
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories handles category listing. Public callers get active
// categories; include_inactive=true returns everything.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	activeOnly := c.Query("include_inactive") != "true"

	categories, err := h.categoryService.ListCategories(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory handles retrieving a single category with its subcategories
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory handles category creation (admin only)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles category modification (admin only)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles category deletion (admin only)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Category deleted"})
}

// ListSubCategories handles listing the subcategories of a category
func (h *CategoryHandler) ListSubCategories(c *gin.Context) {
	categoryID, ok := idParam(c, "id")
	if !ok {
		return
	}

	subs, err := h.categoryService.ListSubCategories(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

// GetSubCategory handles retrieving a single subcategory
func (h *CategoryHandler) GetSubCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	sub, err := h.categoryService.GetSubCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// CreateSubCategory handles subcategory creation (admin only)
func (h *CategoryHandler) CreateSubCategory(c *gin.Context) {
	var req dto.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sub, err := h.categoryService.CreateSubCategory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// UpdateSubCategory handles subcategory modification (admin only)
func (h *CategoryHandler) UpdateSubCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sub, err := h.categoryService.UpdateSubCategory(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// DeleteSubCategory handles subcategory deletion (admin only)
func (h *CategoryHandler) DeleteSubCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteSubCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Subcategory deleted"})
}
