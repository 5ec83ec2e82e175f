package service

import (
	"context"

	"github.com/tmarnet/go-shop/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.CredentialsRequest) (models.User, error)
	Login(ctx context.Context, credentials models.CredentialsRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService manages the product catalog.
type CatalogService interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProducts(ctx context.Context, page int64) ([]models.Product, error)
	GetProductByID(ctx context.Context, productID int64) (models.Product, error)
	UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// CartService manages per-user carts. Every operation verifies that the user
// exists before touching cart state.
type CartService interface {
	AddToCart(ctx context.Context, userID int64, productID int64) error
	RemoveFromCart(ctx context.Context, userID int64, productID int64) error
	ShowCart(ctx context.Context, userID int64) ([]models.CartEntry, error)
}

// CatalogServiceWrapper defines middleware composition for CatalogService.
// Implementations wrap an existing CatalogService to add behavior such as
// logging or validating.
type CatalogServiceWrapper interface {
	Wrap(CatalogService) CatalogService // returns a decorated CatalogService applying additional behavior
}
