package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/pkg/database"
)

// productRepository implements ProductRepository interface
type productRepository struct {
	db *database.Postgres
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *database.Postgres) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, description, image, sub_category_id, price, original_price, stock, rating, reviews, colors, sizes, created_at, updated_at`

// prefixedProductColumns returns productColumns qualified with a table
// alias for use in joins.
func prefixedProductColumns(alias string) string {
	cols := strings.Split(productColumns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

type rowScanner interface {
	Scan(dest ...any) error
}

// productRow buffers nullable columns while scanning a product row.
type productRow struct {
	p                                domain.Product
	description, image, colors, sizes sql.NullString
	subCategoryID                    sql.NullInt64
	originalPrice, rating            sql.NullFloat64
}

func (r *productRow) dest() []any {
	return []any{
		&r.p.ID,
		&r.p.Name,
		&r.description,
		&r.image,
		&r.subCategoryID,
		&r.p.Price,
		&r.originalPrice,
		&r.p.Stock,
		&r.rating,
		&r.p.Reviews,
		&r.colors,
		&r.sizes,
		&r.p.CreatedAt,
		&r.p.UpdatedAt,
	}
}

func (r *productRow) value() *domain.Product {
	p := r.p
	if r.description.Valid {
		p.Description = &r.description.String
	}
	if r.image.Valid {
		p.Image = &r.image.String
	}
	if r.subCategoryID.Valid {
		p.SubCategoryID = &r.subCategoryID.Int64
	}
	if r.originalPrice.Valid {
		p.OriginalPrice = &r.originalPrice.Float64
	}
	if r.rating.Valid {
		p.Rating = &r.rating.Float64
	}
	if r.colors.Valid {
		p.Colors = &r.colors.String
	}
	if r.sizes.Valid {
		p.Sizes = &r.sizes.String
	}
	return &p
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var pr productRow
	if err := row.Scan(pr.dest()...); err != nil {
		return nil, err
	}
	return pr.value(), nil
}

// List retrieves products matching the filter, newest first, plus the
// total match count for pagination.
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error) {
	conditions := []string{}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		idx := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx))
	}
	if filter.SubCategoryID != nil {
		args = append(args, *filter.SubCategoryID)
		conditions = append(conditions, fmt.Sprintf("sub_category_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM products` + where
	if err := r.db.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
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
	listQuery := fmt.Sprintf(
		`SELECT %s FROM products%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)-1, len(args),
	)

	rows, err := r.db.DB.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, total, nil
}

// GetByID retrieves a product by ID
func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

// Create creates a new product
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, description, image, sub_category_id, price, original_price, stock, rating, reviews, colors, sizes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.DB.QueryRowContext(ctx, query,
		product.Name,
		product.Description,
		product.Image,
		product.SubCategoryID,
		product.Price,
		product.OriginalPrice,
		product.Stock,
		product.Rating,
		product.Reviews,
		product.Colors,
		product.Sizes,
		now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update persists the full product row
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, image = $4, sub_category_id = $5, price = $6,
		    original_price = $7, stock = $8, rating = $9, reviews = $10, colors = $11,
		    sizes = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Image,
		product.SubCategoryID,
		product.Price,
		product.OriginalPrice,
		product.Stock,
		product.Rating,
		product.Reviews,
		product.Colors,
		product.Sizes,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("product %d not found: %w", product.ID, ErrNotFound)
	}

	return nil
}

// Delete deletes a product by ID
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("product %d not found: %w", id, ErrNotFound)
	}

	return nil
}

// AdjustStock applies a stock delta in a single statement. The guard in
// the WHERE clause keeps stock from ever going negative; an underflow
// surfaces as ErrNotFound against an existing product.
func (r *productRepository) AdjustStock(ctx context.Context, id int64, delta int) (*domain.Product, error) {
	query := `
		UPDATE products
		SET stock = stock + $2, updated_at = $3
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING ` + productColumns

	p, err := scanProduct(r.db.DB.QueryRowContext(ctx, query, id, delta, time.Now()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stock adjustment rejected for product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return p, nil
}
