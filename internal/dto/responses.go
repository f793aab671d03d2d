package dto

import (
	"time"

	"github.com/quangtran-dev/storefront-api/internal/domain"
)

// AuthResponse represents an authentication response
type AuthResponse struct {
	AccessToken  string   `json:"token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	User         UserInfo `json:"user"`
}

// UserInfo represents user information in a response
type UserInfo struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// UserResponse represents a user response
type UserResponse struct {
	ID            string  `json:"id"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email,omitempty"`
	Role          string  `json:"role"`
	IsActive      bool    `json:"is_active"`
	EmailVerified bool    `json:"email_verified"`
	LastLogin     *string `json:"last_login"`
	CreatedAt     string  `json:"created_at"`
}

// NewUserResponse builds a UserResponse from a domain user
func NewUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:            user.ID,
		Phone:         user.Phone,
		Email:         user.Email,
		Role:          user.Role,
		IsActive:      user.IsActive,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
	if user.LastLogin != nil {
		formatted := user.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &formatted
	}
	return resp
}

// ListResponse wraps a paginated collection
type ListResponse struct {
	Data  any `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// CartResponse represents a cart with its lines and computed totals
type CartResponse struct {
	ID        int64             `json:"id"`
	UserID    string            `json:"user_id"`
	Items     []domain.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

// NewCartResponse builds a CartResponse from a cart view
func NewCartResponse(view *domain.CartView) CartResponse {
	items := view.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartResponse{
		ID:        view.Cart.ID,
		UserID:    view.Cart.UserID,
		Items:     items,
		Total:     view.Total,
		ItemCount: view.ItemCount,
	}
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
