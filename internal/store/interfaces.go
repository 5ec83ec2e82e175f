package store

import (
	"context"

	"github.com/tmarnet/go-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ProductRepository manages the product catalog.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProducts(ctx context.Context, page int64) ([]models.Product, error)
	GetProductByID(ctx context.Context, productID int64) (models.Product, error)
	UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// CartRepository manages per-user cart lines and the product stock they
// draw from. Implementations must keep the sum of a product's stock and
// its reservations across all carts constant: adding an item moves one
// unit from stock into the caller's cart, removing an item moves it back.
type CartRepository interface {
	AddItem(ctx context.Context, userID int64, productID int64) error
	RemoveItem(ctx context.Context, userID int64, productID int64) error
	GetCart(ctx context.Context, userID int64) ([]models.CartEntry, error)
}

// ErrorClassificator determines whether a failed database operation is
// worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
