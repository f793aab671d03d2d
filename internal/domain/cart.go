package domain

import "time"

// Cart is the single cart owned by a user, created lazily on first use.
type Cart struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CartItem is one product line in a cart. (cart_id, product_id) is unique:
// adding an already-present product increments quantity instead of
// inserting a second row.
type CartItem struct {
	ID        int64     `json:"id" db:"id"`
	CartID    int64     `json:"cart_id" db:"cart_id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Product   *Product  `json:"product,omitempty"`
}

// CartView is a cart snapshot with its items, the live total and item
// count. Line prices are the current product prices; cart totals are live,
// unlike order totals which are frozen at creation.
type CartView struct {
	Cart
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// ComputeTotals fills Total and ItemCount from the item lines.
func (c *CartView) ComputeTotals() {
	c.Total = 0
	c.ItemCount = 0
	for _, item := range c.Items {
		if item.Product != nil {
			c.Total += item.Product.Price * float64(item.Quantity)
		}
		c.ItemCount += item.Quantity
	}
}
