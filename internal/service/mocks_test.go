package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetActiveByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockTokenRepo struct {
	mock.Mock
}

func (m *mockTokenRepo) Create(ctx context.Context, token *domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenRepo) GetLive(ctx context.Context, token, userID string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, token, userID)
	if t := args.Get(0); t != nil {
		return t.(*domain.RefreshToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenRepo) Revoke(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *mockTokenRepo) RevokeByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenRepo) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockAttemptRepo struct {
	mock.Mock
}

func (m *mockAttemptRepo) Create(ctx context.Context, attempt *domain.LoginAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *mockAttemptRepo) CountRecentFailures(ctx context.Context, ipAddress string, since time.Time) (int, error) {
	args := m.Called(ctx, ipAddress, since)
	return args.Int(0), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) AdjustStock(ctx context.Context, id int64, delta int) (*domain.Product, error) {
	args := m.Called(ctx, id, delta)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if c := args.Get(0); c != nil {
		return c.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) Create(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepo) ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	args := m.Called(ctx, cartID)
	if i := args.Get(0); i != nil {
		return i.([]domain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) GetItem(ctx context.Context, itemID int64) (*domain.CartItem, *domain.Cart, error) {
	args := m.Called(ctx, itemID)
	var item *domain.CartItem
	var cart *domain.Cart
	if i := args.Get(0); i != nil {
		item = i.(*domain.CartItem)
	}
	if c := args.Get(1); c != nil {
		cart = c.(*domain.Cart)
	}
	return item, cart, args.Error(2)
}

func (m *mockCartRepo) UpsertItem(ctx context.Context, cartID, productID int64, quantity, maxQuantity int) (*domain.CartItem, error) {
	args := m.Called(ctx, cartID, productID, quantity, maxQuantity)
	if i := args.Get(0); i != nil {
		return i.(*domain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.CartItem, error) {
	args := m.Called(ctx, itemID, quantity)
	if i := args.Get(0); i != nil {
		return i.(*domain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) DeleteItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *mockCartRepo) DeleteItemsByCart(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) CreateItems(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, int, error) {
	args := m.Called(ctx, filter)
	if o := args.Get(0); o != nil {
		return o.([]domain.Order), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOrderRepo) CountItems(ctx context.Context, orderID int64) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

func (m *mockOrderRepo) CountItemsByProduct(ctx context.Context, productID int64) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	args := m.Called(ctx, activeOnly)
	if c := args.Get(0); c != nil {
		return c.([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepo) CountSubCategories(ctx context.Context, categoryID int64) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *mockCategoryRepo) ListSubCategories(ctx context.Context, categoryID int64) ([]domain.SubCategory, error) {
	args := m.Called(ctx, categoryID)
	if s := args.Get(0); s != nil {
		return s.([]domain.SubCategory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetSubCategoryByID(ctx context.Context, id int64) (*domain.SubCategory, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.SubCategory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) CreateSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockCategoryRepo) UpdateSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockCategoryRepo) DeleteSubCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepo) CountProductsBySubCategory(ctx context.Context, subCategoryID int64) (int, error) {
	args := m.Called(ctx, subCategoryID)
	return args.Int(0), args.Error(1)
}
