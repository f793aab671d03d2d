package domain

import "time"

// Product represents a sellable product. Stock is never negative; every
// mutation site checks before committing.
type Product struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   *string   `json:"description" db:"description"`
	Image         *string   `json:"image" db:"image"`
	SubCategoryID *int64    `json:"sub_category_id" db:"sub_category_id"`
	Price         float64   `json:"price" db:"price"`
	OriginalPrice *float64  `json:"original_price" db:"original_price"`
	Stock         int       `json:"stock" db:"stock"`
	Rating        *float64  `json:"rating" db:"rating"`
	Reviews       int       `json:"reviews" db:"reviews"`
	Colors        *string   `json:"colors" db:"colors"`
	Sizes         *string   `json:"sizes" db:"sizes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Category groups subcategories for storefront navigation.
type Category struct {
	ID            int64         `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Description   *string       `json:"description" db:"description"`
	Image         *string       `json:"image" db:"image"`
	DisplayOrder  int           `json:"display_order" db:"display_order"`
	IsActive      bool          `json:"is_active" db:"is_active"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
	SubCategories []SubCategory `json:"sub_categories,omitempty"`
}

// SubCategory belongs to a category; products reference it.
type SubCategory struct {
	ID           int64     `json:"id" db:"id"`
	CategoryID   int64     `json:"category_id" db:"category_id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description" db:"description"`
	Image        *string   `json:"image" db:"image"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Banner is a storefront promotional banner.
type Banner struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Image        string    `json:"image" db:"image"`
	Link         *string   `json:"link" db:"link"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
