package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/pkg/database"
)

// loginAttemptRepository implements LoginAttemptRepository interface
type loginAttemptRepository struct {
	db *database.Postgres
}

// NewLoginAttemptRepository creates a new login attempt repository
func NewLoginAttemptRepository(db *database.Postgres) LoginAttemptRepository {
	return &loginAttemptRepository{db: db}
}

// Create appends a login attempt to the audit log
func (r *loginAttemptRepository) Create(ctx context.Context, attempt *domain.LoginAttempt) error {
	query := `
		INSERT INTO login_attempts (ip_address, username, success, attempted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}

	err := r.db.DB.QueryRowContext(ctx, query,
		attempt.IPAddress,
		attempt.Username,
		attempt.Success,
		attempt.AttemptedAt,
	).Scan(&attempt.ID)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}

	return nil
}

// CountRecentFailures counts failed attempts from an IP since the given
// instant.
func (r *loginAttemptRepository) CountRecentFailures(ctx context.Context, ipAddress string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM login_attempts
		WHERE ip_address = $1 AND success = false AND attempted_at > $2
	`

	var count int
	err := r.db.DB.QueryRowContext(ctx, query, ipAddress, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count login failures: %w", err)
	}

	return count, nil
}
