package acceptance

import (
	"fmt"
	"net/http"

	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
)

func (s *Suite) TestProducts_PublicListing() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 19.99, 10)

	resp := s.get("/api/v1/products", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var list dto.ListResponse
	s.decode(resp, &list)
	s.Equal(1, list.Total)

	resp = s.get(fmt.Sprintf("/api/v1/products/%d", product.ID), "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var fetched domain.Product
	s.decode(resp, &fetched)
	s.Equal("Linen Shirt", fetched.Name)
	s.InDelta(19.99, fetched.Price, 0.001)
}

func (s *Suite) TestProducts_SearchFilter() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	s.seedCatalog(admin.AccessToken, 19.99, 10)

	resp := s.get("/api/v1/products?search=linen", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var list dto.ListResponse
	s.decode(resp, &list)
	s.Equal(1, list.Total)

	resp = s.get("/api/v1/products?search=nonexistent", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	s.decode(resp, &list)
	s.Zero(list.Total)
}

func (s *Suite) TestProducts_WriteRequiresAdmin() {
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/products", auth.AccessToken, dto.CreateProductRequest{
		Name:  "Sneakers",
		Price: 59.99,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *Suite) TestProducts_UnknownSubCategoryRejected() {
	admin := s.registerAdmin("0900000001", "AdminPass123")

	missing := int64(424242)
	resp := s.postJSON("/api/v1/products", admin.AccessToken, dto.CreateProductRequest{
		Name:          "Sneakers",
		Price:         59.99,
		SubCategoryID: &missing,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestProducts_DeleteBlockedWhenOrdered() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	auth := s.registerUser("0912345678", "Password123")

	s.placeOrder(auth.AccessToken, dto.CreateOrderRequest{
		Total: 10.00,
		Items: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 1, Price: 10.00},
		},
	})

	resp := s.delete(fmt.Sprintf("/api/v1/products/%d", product.ID), admin.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestCategories_GuardedDeletes() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	s.Require().NotNil(product.SubCategoryID)

	resp := s.get("/api/v1/categories", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var categories []domain.Category
	s.decode(resp, &categories)
	s.Require().Len(categories, 1)
	categoryID := categories[0].ID

	// A category with subcategories cannot be removed.
	resp = s.delete(fmt.Sprintf("/api/v1/categories/%d", categoryID), admin.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	// Neither can a subcategory that still has products.
	resp = s.delete(fmt.Sprintf("/api/v1/subcategories/%d", *product.SubCategoryID), admin.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp = s.delete(fmt.Sprintf("/api/v1/products/%d", product.ID), admin.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.delete(fmt.Sprintf("/api/v1/subcategories/%d", *product.SubCategoryID), admin.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.delete(fmt.Sprintf("/api/v1/categories/%d", categoryID), admin.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *Suite) TestCategories_ListSubcategories() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	s.Require().NotNil(product.SubCategoryID)

	resp := s.get(fmt.Sprintf("/api/v1/subcategories/%d", *product.SubCategoryID), "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var sub domain.SubCategory
	s.decode(resp, &sub)

	resp = s.get(fmt.Sprintf("/api/v1/categories/%d/subcategories", sub.CategoryID), "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var subs []domain.SubCategory
	s.decode(resp, &subs)
	s.Require().Len(subs, 1)
	s.Equal("Shirts", subs[0].Name)
}

func (s *Suite) TestBanners_ActiveFiltering() {
	admin := s.registerAdmin("0900000001", "AdminPass123")

	resp := s.postJSON("/api/v1/banners", admin.AccessToken, dto.CreateBannerRequest{
		Title: "Summer Sale",
		Image: "https://cdn.example.com/banners/summer.png",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var banner domain.Banner
	s.decode(resp, &banner)
	s.True(banner.IsActive)

	inactive := false
	resp = s.putJSON(fmt.Sprintf("/api/v1/banners/%d", banner.ID), admin.AccessToken, dto.UpdateBannerRequest{
		IsActive: &inactive,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.get("/api/v1/banners", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var banners []domain.Banner
	s.decode(resp, &banners)
	s.Empty(banners)

	resp = s.get("/api/v1/banners?include_inactive=true", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	s.decode(resp, &banners)
	s.Len(banners, 1)
}
