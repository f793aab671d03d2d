package service

import (
	"context"
	"errors"

	"github.com/quangtran-dev/storefront-api/internal/apperrors"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/repository"
)

// cartService implements CartService interface
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart retrieves the user's cart, creating it on first use
func (s *cartService) GetCart(ctx context.Context, userID string) (*domain.CartView, error) {
	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, cart)
}

// AddItem adds a product to the user's cart. If the product is already in
// the cart the quantity is added to the existing line, not replaced.
func (s *cartService) AddItem(ctx context.Context, userID string, req *dto.AddToCartRequest) (*domain.CartView, error) {
	if req.Quantity < 1 {
		return nil, apperrors.New(apperrors.KindValidation, "quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "product not found")
		}
		return nil, apperrors.Internal("failed to get product", err)
	}

	if product.Stock < req.Quantity {
		return nil, apperrors.New(apperrors.KindInsufficientStock, "not enough stock available")
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Single atomic upsert; two concurrent adds for the same product both
	// land as quantity increments, and the stock ceiling is enforced
	// against the combined quantity in the same statement.
	if _, err := s.cartRepo.UpsertItem(ctx, cart.ID, req.ProductID, req.Quantity, product.Stock); err != nil {
		if errors.Is(err, repository.ErrStockExceeded) {
			return nil, apperrors.New(apperrors.KindInsufficientStock, "not enough stock available")
		}
		return nil, apperrors.Internal("failed to add cart item", err)
	}

	return s.buildView(ctx, cart)
}

// UpdateItem replaces the quantity of a cart line owned by the user
func (s *cartService) UpdateItem(ctx context.Context, userID string, itemID int64, quantity int) (*domain.CartView, error) {
	if quantity < 1 {
		return nil, apperrors.New(apperrors.KindValidation, "quantity must be at least 1")
	}

	item, cart, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if item.Product != nil && item.Product.Stock < quantity {
		return nil, apperrors.New(apperrors.KindInsufficientStock, "not enough stock available")
	}

	if _, err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "cart item not found")
		}
		return nil, apperrors.Internal("failed to update cart item", err)
	}

	return s.buildView(ctx, cart)
}

// RemoveItem removes a cart line owned by the user
func (s *cartService) RemoveItem(ctx context.Context, userID string, itemID int64) (*domain.CartView, error) {
	_, cart, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "cart item not found")
		}
		return nil, apperrors.Internal("failed to delete cart item", err)
	}

	return s.buildView(ctx, cart)
}

// ClearCart removes every line from the user's cart
func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.cartRepo.DeleteItemsByCart(ctx, cart.ID); err != nil {
		return apperrors.Internal("failed to clear cart", err)
	}

	return nil
}

// getOrCreateCart fetches the user's cart, creating it when absent. A
// concurrent create losing the unique race falls back to re-fetching.
func (s *cartService) getOrCreateCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal("failed to get cart", err)
	}

	cart = &domain.Cart{UserID: userID}
	err = s.cartRepo.Create(ctx, cart)
	if err == nil {
		return cart, nil
	}
	if errors.Is(err, repository.ErrDuplicateKey) {
		cart, err = s.cartRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperrors.Internal("failed to get cart", err)
		}
		return cart, nil
	}

	return nil, apperrors.Internal("failed to create cart", err)
}

// getOwnedItem loads a cart line and rejects access to other users' lines
func (s *cartService) getOwnedItem(ctx context.Context, userID string, itemID int64) (*domain.CartItem, *domain.Cart, error) {
	item, cart, err := s.cartRepo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, apperrors.New(apperrors.KindNotFound, "cart item not found")
		}
		return nil, nil, apperrors.Internal("failed to get cart item", err)
	}

	if cart.UserID != userID {
		return nil, nil, apperrors.New(apperrors.KindForbidden, "cart item belongs to another user")
	}

	return item, cart, nil
}

func (s *cartService) buildView(ctx context.Context, cart *domain.Cart) (*domain.CartView, error) {
	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to list cart items", err)
	}

	view := &domain.CartView{Cart: *cart, Items: items}
	view.ComputeTotals()
	return view, nil
}
