package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert violates a uniqueness
	// constraint (duplicate username, duplicate cart per user, ...)
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStockExceeded is returned when a guarded cart write would push a
	// line past the product's available stock
	ErrStockExceeded = errors.New("stock exceeded")
)

const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
