package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/service"
)

// BannerHandler handles banner requests
type BannerHandler struct {
	bannerService service.BannerService
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(bannerService service.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// List handles banner listing
func (h *BannerHandler) List(c *gin.Context) {
	activeOnly := c.Query("include_inactive") != "true"

	banners, err := h.bannerService.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, banners)
}

// Get handles retrieving a single banner
func (h *BannerHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	banner, err := h.bannerService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, banner)
}

// Create handles banner creation (admin only)
func (h *BannerHandler) Create(c *gin.Context) {
	var req dto.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	banner, err := h.bannerService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, banner)
}

// Update handles banner modification (admin only)
func (h *BannerHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	banner, err := h.bannerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, banner)
}

// Delete handles banner deletion (admin only)
func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Banner deleted"})
}
