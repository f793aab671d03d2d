package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/pkg/database"
)

// tokenRepository implements TokenRepository interface
type tokenRepository struct {
	db *database.Postgres
}

// NewTokenRepository creates a new refresh token repository
func NewTokenRepository(db *database.Postgres) TokenRepository {
	return &tokenRepository{db: db}
}

// Create persists a new refresh token
func (r *tokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.Revoked,
		token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}

	return nil
}

// GetLive retrieves a non-revoked, non-expired refresh token matching the
// token value and owning user.
func (r *tokenRepository) GetLive(ctx context.Context, token, userID string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE token = $1 AND user_id = $2 AND revoked = false AND expires_at > $3
	`

	rt := &domain.RefreshToken{}
	err := r.db.DB.QueryRowContext(ctx, query, token, userID, time.Now()).Scan(
		&rt.ID,
		&rt.UserID,
		&rt.Token,
		&rt.ExpiresAt,
		&rt.Revoked,
		&rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("live refresh token not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return rt, nil
}

// Revoke marks a single refresh token revoked. The conditional update
// guarantees that of two concurrent rotations using the same token exactly
// one wins; the loser gets ErrNotFound.
func (r *tokenRepository) Revoke(ctx context.Context, tokenID string) error {
	query := `UPDATE refresh_tokens SET revoked = true WHERE id = $1 AND revoked = false`

	result, err := r.db.DB.ExecContext(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("refresh token %s already revoked or missing: %w", tokenID, ErrNotFound)
	}

	return nil
}

// RevokeByToken marks every stored row matching the token value revoked.
// Matching by value rather than by presumed single-row identity makes
// logout idempotent; zero matches is not an error.
func (r *tokenRepository) RevokeByToken(ctx context.Context, token string) error {
	query := `UPDATE refresh_tokens SET revoked = true WHERE token = $1`

	if _, err := r.db.DB.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens by value: %w", err)
	}

	return nil
}

// DeleteExpired deletes all expired refresh tokens
func (r *tokenRepository) DeleteExpired(ctx context.Context) error {
	query := `DELETE FROM refresh_tokens WHERE expires_at < $1`

	if _, err := r.db.DB.ExecContext(ctx, query, time.Now()); err != nil {
		return fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	return nil
}
