package service

import (
	"context"

	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/repository"
)

// AuthService defines authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	VerifyAccessToken(ctx context.Context, token string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

// ProductService defines product catalog operations
type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*domain.Product, error)
	UpdateStock(ctx context.Context, id int64, delta int) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryService defines category and subcategory operations
type CategoryService interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListSubCategories(ctx context.Context, categoryID int64) ([]domain.SubCategory, error)
	GetSubCategory(ctx context.Context, id int64) (*domain.SubCategory, error)
	CreateSubCategory(ctx context.Context, req *dto.CreateSubCategoryRequest) (*domain.SubCategory, error)
	UpdateSubCategory(ctx context.Context, id int64, req *dto.UpdateSubCategoryRequest) (*domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id int64) error
}

// BannerService defines banner operations
type BannerService interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Banner, error)
	Get(ctx context.Context, id int64) (*domain.Banner, error)
	Create(ctx context.Context, req *dto.CreateBannerRequest) (*domain.Banner, error)
	Update(ctx context.Context, id int64, req *dto.UpdateBannerRequest) (*domain.Banner, error)
	Delete(ctx context.Context, id int64) error
}

// CartService defines cart operations. Every method operates on the
// calling user's own cart.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*domain.CartView, error)
	AddItem(ctx context.Context, userID string, req *dto.AddToCartRequest) (*domain.CartView, error)
	UpdateItem(ctx context.Context, userID string, itemID int64, quantity int) (*domain.CartView, error)
	RemoveItem(ctx context.Context, userID string, itemID int64) (*domain.CartView, error)
	ClearCart(ctx context.Context, userID string) error
}

// OrderService defines order operations
type OrderService interface {
	Create(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, requester *domain.User, orderID int64) (*domain.Order, error)
	List(ctx context.Context, requester *domain.User, status string, page, limit int) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (*domain.Order, error)
	Delete(ctx context.Context, orderID int64) error
}
