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

// orderRepository implements OrderRepository interface
type orderRepository struct {
	db *database.Postgres
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *database.Postgres) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order row. Order items are written separately by
// CreateItems; the two writes are not wrapped in a transaction, matching
// the accepted partial-failure behavior.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (user_id, total, status, payment_method, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	err := r.db.DB.QueryRowContext(ctx, query,
		order.UserID,
		order.Total,
		order.Status,
		order.PaymentMethod,
		order.Notes,
		time.Now(),
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// CreateItems persists order lines with their frozen prices
func (r *orderRepository) CreateItems(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for i := range items {
		items[i].OrderID = orderID
		err := r.db.DB.QueryRowContext(ctx, query,
			orderID,
			items[i].ProductID,
			items[i].Quantity,
			items[i].Price,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	return nil
}

// GetByID retrieves an order with its items and product summaries
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, user_id, total, status, payment_method, notes, created_at
		FROM orders
		WHERE id = $1
	`

	order, err := scanOrder(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.listItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// List retrieves orders matching the filter, newest first, plus the total
// match count for pagination.
func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.Order, int, error) {
	conditions := []string{}
	args := []any{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	for i, c := range conditions {
		if i == 0 {
			where = " WHERE " + c
		} else {
			where += " AND " + c
		}
	}

	var total int
	if err := r.db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(
		`SELECT id, user_id, total, status, payment_method, notes, created_at
		 FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate orders: %w", err)
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}

	return orders, total, nil
}

// UpdateStatus replaces the order status
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.DB.ExecContext(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("order %d not found: %w", id, ErrNotFound)
	}

	return nil
}

// Delete deletes an order by ID
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("order %d not found: %w", id, ErrNotFound)
	}

	return nil
}

// CountItems counts the lines of an order
func (r *orderRepository) CountItems(ctx context.Context, orderID int64) (int, error) {
	var count int
	err := r.db.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM order_items WHERE order_id = $1`, orderID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count order items: %w", err)
	}
	return count, nil
}

// CountItemsByProduct counts order lines referencing a product
func (r *orderRepository) CountItemsByProduct(ctx context.Context, productID int64) (int, error) {
	var count int
	err := r.db.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM order_items WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count order items by product: %w", err)
	}
	return count, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, ` + prefixedProductColumns("p") + `
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id ASC
	`

	rows, err := r.db.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		item := domain.OrderItem{}
		var pr productRow

		dest := []any{&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price}
		dest = append(dest, pr.dest()...)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.Product = pr.value()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}

	return items, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	order := &domain.Order{}
	var paymentMethod, notes sql.NullString

	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Total,
		&order.Status,
		&paymentMethod,
		&notes,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentMethod.Valid {
		order.PaymentMethod = &paymentMethod.String
	}
	if notes.Valid {
		order.Notes = &notes.String
	}

	return order, nil
}
