package repository

import (
	"context"
	"time"

	"github.com/quangtran-dev/storefront-api/internal/domain"
)

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetActiveByID(ctx context.Context, id string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}

// TokenRepository defines methods for refresh token operations
type TokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetLive(ctx context.Context, token, userID string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, tokenID string) error
	RevokeByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

// LoginAttemptRepository records login attempts and computes the sliding
// rate-limit window. The log is append-only.
type LoginAttemptRepository interface {
	Create(ctx context.Context, attempt *domain.LoginAttempt) error
	CountRecentFailures(ctx context.Context, ipAddress string, since time.Time) (int, error)
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Search        string
	SubCategoryID *int64
	Page          int
	Limit         int
}

// ProductRepository defines methods for product operations
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int) (*domain.Product, error)
}

// CategoryRepository defines methods for category and subcategory
// operations
type CategoryRepository interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	CountSubCategories(ctx context.Context, categoryID int64) (int, error)

	ListSubCategories(ctx context.Context, categoryID int64) ([]domain.SubCategory, error)
	GetSubCategoryByID(ctx context.Context, id int64) (*domain.SubCategory, error)
	CreateSubCategory(ctx context.Context, sub *domain.SubCategory) error
	UpdateSubCategory(ctx context.Context, sub *domain.SubCategory) error
	DeleteSubCategory(ctx context.Context, id int64) error
	CountProductsBySubCategory(ctx context.Context, subCategoryID int64) (int, error)
}

// BannerRepository defines methods for banner operations
type BannerRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Banner, error)
	GetByID(ctx context.Context, id int64) (*domain.Banner, error)
	Create(ctx context.Context, banner *domain.Banner) error
	Update(ctx context.Context, banner *domain.Banner) error
	Delete(ctx context.Context, id int64) error
}

// CartRepository defines methods for cart operations
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	Create(ctx context.Context, cart *domain.Cart) error
	ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error)
	GetItem(ctx context.Context, itemID int64) (*domain.CartItem, *domain.Cart, error)
	UpsertItem(ctx context.Context, cartID, productID int64, quantity, maxQuantity int) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, itemID int64) error
	DeleteItemsByCart(ctx context.Context, cartID int64) error
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	UserID string
	Status string
	Page   int
	Limit  int
}

// OrderRepository defines methods for order operations
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	CreateItems(ctx context.Context, orderID int64, items []domain.OrderItem) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	CountItems(ctx context.Context, orderID int64) (int, error)
	CountItemsByProduct(ctx context.Context, productID int64) (int, error)
}
