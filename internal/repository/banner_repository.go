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

// bannerRepository implements BannerRepository interface
type bannerRepository struct {
	db *database.Postgres
}

// NewBannerRepository creates a new banner repository
func NewBannerRepository(db *database.Postgres) BannerRepository {
	return &bannerRepository{db: db}
}

const bannerColumns = `id, title, image, link, display_order, is_active, created_at, updated_at`

func scanBanner(row rowScanner) (*domain.Banner, error) {
	b := &domain.Banner{}
	var link sql.NullString

	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Image,
		&link,
		&b.DisplayOrder,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if link.Valid {
		b.Link = &link.String
	}

	return b, nil
}

// List retrieves banners ordered by display order
func (r *bannerRepository) List(ctx context.Context, activeOnly bool) ([]domain.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY display_order ASC, id ASC`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer rows.Close()

	var banners []domain.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate banners: %w", err)
	}

	return banners, nil
}

// GetByID retrieves a banner by ID
func (r *bannerRepository) GetByID(ctx context.Context, id int64) (*domain.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1`

	b, err := scanBanner(r.db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("banner %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}

	return b, nil
}

// Create creates a new banner
func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	query := `
		INSERT INTO banners (title, image, link, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		banner.Title,
		banner.Image,
		banner.Link,
		banner.DisplayOrder,
		banner.IsActive,
		time.Now(),
	).Scan(&banner.ID, &banner.CreatedAt, &banner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}

	return nil
}

// Update persists the full banner row
func (r *bannerRepository) Update(ctx context.Context, banner *domain.Banner) error {
	query := `
		UPDATE banners
		SET title = $2, image = $3, link = $4, display_order = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		banner.ID,
		banner.Title,
		banner.Image,
		banner.Link,
		banner.DisplayOrder,
		banner.IsActive,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update banner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("banner %d not found: %w", banner.ID, ErrNotFound)
	}

	return nil
}

// Delete deletes a banner by ID
func (r *bannerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("banner %d not found: %w", id, ErrNotFound)
	}

	return nil
}
