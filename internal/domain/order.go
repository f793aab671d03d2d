package domain

import (
	"strings"
	"time"
)

// Order status values. Any status may replace any other; no transition
// graph is enforced.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatuses returns the accepted order statuses.
func ValidOrderStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

// NormalizeOrderStatus lowercases the input and reports whether it is one
// of the accepted statuses.
func NormalizeOrderStatus(status string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	for _, s := range ValidOrderStatuses() {
		if s == normalized {
			return normalized, true
		}
	}
	return "", false
}

// Order is a placed order. Total is the amount agreed at checkout time.
type Order struct {
	ID            int64       `json:"id" db:"id"`
	UserID        string      `json:"user_id" db:"user_id"`
	Total         float64     `json:"total" db:"total"`
	Status        string      `json:"status" db:"status"`
	PaymentMethod *string     `json:"payment_method" db:"payment_method"`
	Notes         *string     `json:"notes" db:"notes"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	Items         []OrderItem `json:"items,omitempty"`
}

// OrderItem is one line of an order. Price is frozen at order-creation
// time and never re-read from the live product, so historical orders stay
// stable when product pricing changes.
type OrderItem struct {
	ID        int64    `json:"id" db:"id"`
	OrderID   int64    `json:"order_id" db:"order_id"`
	ProductID int64    `json:"product_id" db:"product_id"`
	Quantity  int      `json:"quantity" db:"quantity"`
	Price     float64  `json:"price" db:"price"`
	Product   *Product `json:"product,omitempty"`
}
