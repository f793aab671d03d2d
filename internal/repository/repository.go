package repository

import (
	"github.com/quangtran-dev/storefront-api/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User         UserRepository
	Token        TokenRepository
	LoginAttempt LoginAttemptRepository
	Product      ProductRepository
	Category     CategoryRepository
	Banner       BannerRepository
	Cart         CartRepository
	Order        OrderRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Token:        NewTokenRepository(db),
		LoginAttempt: NewLoginAttemptRepository(db),
		Product:      NewProductRepository(db),
		Category:     NewCategoryRepository(db),
		Banner:       NewBannerRepository(db),
		Cart:         NewCartRepository(db),
		Order:        NewOrderRepository(db),
	}
}
