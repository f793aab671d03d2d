package dto

// RegisterRequest represents a registration request. Phone doubles as the
// login username.
type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required,min=6" validate:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email" validate:"omitempty,email"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// RefreshRequest carries the refresh token being exchanged
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

// LogoutRequest carries the refresh token being revoked
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required" validate:"required"`
	Price         float64  `json:"price" binding:"required,gt=0" validate:"required,gt=0"`
	Stock         int      `json:"stock" binding:"gte=0" validate:"gte=0"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	OriginalPrice *float64 `json:"original_price" binding:"omitempty,gt=0" validate:"omitempty,gt=0"`
	SubCategoryID *int64   `json:"sub_category_id"`
	Colors        *string  `json:"colors"`
	Sizes         *string  `json:"sizes"`
}

// UpdateProductRequest represents a product update request. Nil fields are
// left unchanged.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0" validate:"omitempty,gt=0"`
	Stock         *int     `json:"stock" binding:"omitempty,gte=0" validate:"omitempty,gte=0"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	OriginalPrice *float64 `json:"original_price" binding:"omitempty,gt=0" validate:"omitempty,gt=0"`
	SubCategoryID *int64   `json:"sub_category_id"`
	Colors        *string  `json:"colors"`
	Sizes         *string  `json:"sizes"`
}

// UpdateStockRequest represents a signed stock adjustment
type UpdateStockRequest struct {
	Delta int `json:"delta" binding:"required" validate:"required"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name         string  `json:"name" binding:"required" validate:"required"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	DisplayOrder int     `json:"display_order"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// CreateSubCategoryRequest represents a subcategory creation request
type CreateSubCategoryRequest struct {
	Name         string  `json:"name" binding:"required" validate:"required"`
	CategoryID   int64   `json:"category_id" binding:"required" validate:"required"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	DisplayOrder int     `json:"display_order"`
}

// UpdateSubCategoryRequest represents a subcategory update request
type UpdateSubCategoryRequest struct {
	Name         *string `json:"name"`
	CategoryID   *int64  `json:"category_id"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// CreateBannerRequest represents a banner creation request
type CreateBannerRequest struct {
	Title        string  `json:"title" binding:"required" validate:"required"`
	Image        string  `json:"image" binding:"required" validate:"required"`
	Link         *string `json:"link"`
	DisplayOrder int     `json:"display_order"`
}

// UpdateBannerRequest represents a banner update request
type UpdateBannerRequest struct {
	Title        *string `json:"title"`
	Image        *string `json:"image"`
	Link         *string `json:"link"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// AddToCartRequest represents an add-to-cart request. Quantity is added to
// any existing line for the same product.
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required" validate:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0" validate:"required,gt=0"`
}

// UpdateCartItemRequest represents a cart line quantity replacement
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0" validate:"required,gt=0"`
}

// OrderItemRequest represents one order line as supplied by the caller.
// The price is persisted exactly as given, not re-read from the product.
type OrderItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required" validate:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0" validate:"required,gt=0"`
	Price     float64 `json:"price" binding:"gte=0" validate:"gte=0"`
}

// CreateOrderRequest represents an order creation request. The caller
// supplies the total and the line items.
type CreateOrderRequest struct {
	Total         float64            `json:"total" binding:"required,gt=0" validate:"required,gt=0"`
	Status        string             `json:"status"`
	PaymentMethod *string            `json:"payment_method"`
	Notes         *string            `json:"notes"`
	Items         []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateOrderStatusRequest represents an order status change request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required"`
}
