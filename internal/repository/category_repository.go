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

// categoryRepository implements CategoryRepository interface
type categoryRepository struct {
	db *database.Postgres
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *database.Postgres) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = `id, name, description, image, display_order, is_active, created_at, updated_at`
const subCategoryColumns = `id, category_id, name, description, image, display_order, is_active, created_at, updated_at`

func scanCategory(row rowScanner) (*domain.Category, error) {
	c := &domain.Category{}
	var description, image sql.NullString

	err := row.Scan(
		&c.ID,
		&c.Name,
		&description,
		&image,
		&c.DisplayOrder,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		c.Description = &description.String
	}
	if image.Valid {
		c.Image = &image.String
	}

	return c, nil
}

func scanSubCategory(row rowScanner) (*domain.SubCategory, error) {
	s := &domain.SubCategory{}
	var description, image sql.NullString

	err := row.Scan(
		&s.ID,
		&s.CategoryID,
		&s.Name,
		&description,
		&image,
		&s.DisplayOrder,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		s.Description = &description.String
	}
	if image.Valid {
		s.Image = &image.String
	}

	return s, nil
}

// ListCategories retrieves categories ordered by display order, each with
// its active subcategories attached.
func (r *categoryRepository) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY display_order ASC, id ASC`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	for i := range categories {
		subs, err := r.ListSubCategories(ctx, categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].SubCategories = subs
	}

	return categories, nil
}

// GetCategoryByID retrieves a category with its active subcategories
func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	c, err := scanCategory(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	subs, err := r.ListSubCategories(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.SubCategories = subs

	return c, nil
}

// CreateCategory creates a new category
func (r *categoryRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (name, description, image, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		category.Name,
		category.Description,
		category.Image,
		category.DisplayOrder,
		category.IsActive,
		time.Now(),
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// UpdateCategory persists the full category row
func (r *categoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, image = $4, display_order = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.Image,
		category.DisplayOrder,
		category.IsActive,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("category %d not found: %w", category.ID, ErrNotFound)
	}

	return nil
}

// DeleteCategory deletes a category by ID
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("category %d not found: %w", id, ErrNotFound)
	}

	return nil
}

// CountSubCategories counts subcategories under a category
func (r *categoryRepository) CountSubCategories(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := r.db.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sub_categories WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subcategories: %w", err)
	}
	return count, nil
}

// ListSubCategories retrieves active subcategories of a category ordered
// by display order
func (r *categoryRepository) ListSubCategories(ctx context.Context, categoryID int64) ([]domain.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + `
		FROM sub_categories
		WHERE category_id = $1 AND is_active = true
		ORDER BY display_order ASC, id ASC`

	rows, err := r.db.DB.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer rows.Close()

	var subs []domain.SubCategory
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		subs = append(subs, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subcategories: %w", err)
	}

	return subs, nil
}

// GetSubCategoryByID retrieves a subcategory by ID
func (r *categoryRepository) GetSubCategoryByID(ctx context.Context, id int64) (*domain.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE id = $1`

	s, err := scanSubCategory(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subcategory %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get subcategory: %w", err)
	}

	return s, nil
}

// CreateSubCategory creates a new subcategory
func (r *categoryRepository) CreateSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	query := `
		INSERT INTO sub_categories (category_id, name, description, image, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		sub.CategoryID,
		sub.Name,
		sub.Description,
		sub.Image,
		sub.DisplayOrder,
		sub.IsActive,
		time.Now(),
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subcategory: %w", err)
	}

	return nil
}

// UpdateSubCategory persists the full subcategory row
func (r *categoryRepository) UpdateSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	query := `
		UPDATE sub_categories
		SET category_id = $2, name = $3, description = $4, image = $5, display_order = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		sub.ID,
		sub.CategoryID,
		sub.Name,
		sub.Description,
		sub.Image,
		sub.DisplayOrder,
		sub.IsActive,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update subcategory: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("subcategory %d not found: %w", sub.ID, ErrNotFound)
	}

	return nil
}

// DeleteSubCategory deletes a subcategory by ID
func (r *categoryRepository) DeleteSubCategory(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM sub_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subcategory: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("subcategory %d not found: %w", id, ErrNotFound)
	}

	return nil
}

// CountProductsBySubCategory counts products referencing a subcategory
func (r *categoryRepository) CountProductsBySubCategory(ctx context.Context, subCategoryID int64) (int, error) {
	var count int
	err := r.db.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE sub_category_id = $1`, subCategoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products by subcategory: %w", err)
	}
	return count, nil
}
