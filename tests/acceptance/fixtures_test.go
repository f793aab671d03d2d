package acceptance

import (
	"net/http"

	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
)

// registerUser creates an account through the API and returns its tokens.
func (s *Suite) registerUser(phone, password string) dto.AuthResponse {
	resp := s.postJSON("/api/v1/auth/register", "", dto.RegisterRequest{
		Phone:    phone,
		Password: password,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var auth dto.AuthResponse
	s.decode(resp, &auth)
	return auth
}

// registerAdmin creates an account, promotes it to admin directly in the
// database, and logs in again so the access token carries the admin role.
func (s *Suite) registerAdmin(phone, password string) dto.AuthResponse {
	auth := s.registerUser(phone, password)

	_, err := s.Postgres.DB.Exec("UPDATE users SET role = 'admin' WHERE id = $1", auth.User.ID)
	s.Require().NoError(err)

	resp := s.postJSON("/api/v1/auth/login", "", dto.LoginRequest{
		Phone:    phone,
		Password: password,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var adminAuth dto.AuthResponse
	s.decode(resp, &adminAuth)
	return adminAuth
}

// seedCatalog creates a category, a subcategory under it, and a product via
// the admin endpoints, returning the product.
func (s *Suite) seedCatalog(adminToken string, price float64, stock int) domain.Product {
	resp := s.postJSON("/api/v1/categories", adminToken, dto.CreateCategoryRequest{
		Name: "Apparel",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var category domain.Category
	s.decode(resp, &category)

	resp = s.postJSON("/api/v1/subcategories", adminToken, dto.CreateSubCategoryRequest{
		Name:       "Shirts",
		CategoryID: category.ID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var sub domain.SubCategory
	s.decode(resp, &sub)

	resp = s.postJSON("/api/v1/products", adminToken, dto.CreateProductRequest{
		Name:          "Linen Shirt",
		Price:         price,
		Stock:         stock,
		SubCategoryID: &sub.ID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var product domain.Product
	s.decode(resp, &product)
	return product
}
