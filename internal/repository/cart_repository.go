package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/pkg/database"
)

// cartRepository implements CartRepository interface
type cartRepository struct {
	db *database.Postgres
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *database.Postgres) CartRepository {
	return &cartRepository{db: db}
}

// GetByUserID retrieves the cart owned by a user
func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	query := `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`

	cart := &domain.Cart{}
	err := r.db.DB.QueryRowContext(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cart for user %s not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return cart, nil
}

// Create creates a cart for a user. A losing concurrent insert surfaces
// as ErrDuplicateKey so the caller can re-fetch instead of failing.
func (r *cartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	query := `
		INSERT INTO carts (user_id, created_at, updated_at)
		VALUES ($1, $2, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.DB.QueryRowContext(ctx, query, cart.UserID, time.Now()).Scan(
		&cart.ID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cart for user %s already exists: %w", cart.UserID, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create cart: %w", err)
	}

	return nil
}

// ListItems retrieves cart items with their products, newest first
func (r *cartRepository) ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at, ` + prefixedProductColumns("p") + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at DESC
	`

	rows, err := r.db.DB.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		item, err := scanCartItemWithProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart items: %w", err)
	}

	return items, nil
}

// GetItem retrieves a cart item with its product and owning cart
func (r *cartRepository) GetItem(ctx context.Context, itemID int64) (*domain.CartItem, *domain.Cart, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at, ` + prefixedProductColumns("p") + `,
		       c.id, c.user_id, c.created_at, c.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		JOIN carts c ON c.id = ci.cart_id
		WHERE ci.id = $1
	`

	row := r.db.DB.QueryRowContext(ctx, query, itemID)

	item := &domain.CartItem{}
	var pr productRow
	cart := &domain.Cart{}
	dest := append(cartItemDest(item), pr.dest()...)
	dest = append(dest, &cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("cart item %d not found: %w", itemID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	item.Product = pr.value()

	return item, cart, nil
}

// UpsertItem inserts a cart line or atomically increments the quantity of
// the existing (cart, product) line, refusing to push the combined
// quantity past maxQuantity. A single statement closes the
// read-then-write race between concurrent adds of the same product.
func (r *cartRepository) UpsertItem(ctx context.Context, cartID, productID int64, quantity, maxQuantity int) (*domain.CartItem, error) {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		WHERE cart_items.quantity + EXCLUDED.quantity <= $5
		RETURNING id, cart_id, product_id, quantity, created_at, updated_at
	`

	item := &domain.CartItem{}
	err := r.db.DB.QueryRowContext(ctx, query, cartID, productID, quantity, time.Now(), maxQuantity).Scan(
		cartItemDest(item)...,
	)
	if err != nil {
		// The insert arm always returns a row, so no rows means the
		// conflicting update was rejected by the quantity guard.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cart line for product %d would exceed stock: %w", productID, ErrStockExceeded)
		}
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return item, nil
}

// UpdateItemQuantity replaces the stored quantity of a cart item
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, cart_id, product_id, quantity, created_at, updated_at
	`

	item := &domain.CartItem{}
	err := r.db.DB.QueryRowContext(ctx, query, itemID, quantity, time.Now()).Scan(
		cartItemDest(item)...,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cart item %d not found: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return item, nil
}

// DeleteItem deletes a cart item by ID
func (r *cartRepository) DeleteItem(ctx context.Context, itemID int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("cart item %d not found: %w", itemID, ErrNotFound)
	}

	return nil
}

// DeleteItemsByCart removes every item in a cart; zero rows is fine.
func (r *cartRepository) DeleteItemsByCart(ctx context.Context, cartID int64) error {
	if _, err := r.db.DB.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func cartItemDest(item *domain.CartItem) []any {
	return []any{
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	}
}

func scanCartItemWithProduct(row rowScanner) (*domain.CartItem, error) {
	item := &domain.CartItem{}
	var pr productRow

	dest := append(cartItemDest(item), pr.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	item.Product = pr.value()

	return item, nil
}
