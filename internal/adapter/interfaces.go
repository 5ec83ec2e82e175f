// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the go-shop HTTP API.
//
// The primary abstraction is [ShopClient], which decouples callers from the
// wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPShopClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/tmarnet/go-shop/models"
)

// ShopClient defines typed access to the go-shop server. Implementations are
// responsible for serialisation, bearer token management, and mapping
// transport-level errors to the sentinel values defined in this package.
type ShopClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials. On
	// success it stores the returned bearer token via SetToken and returns
	// the token value. Returns [ErrConflict] (wrapped) if the email is
	// already taken.
	Register(ctx context.Context, credentials models.CredentialsRequest) (models.Token, error)

	// Login authenticates with the provided credentials. On success it stores
	// the returned bearer token via SetToken and returns the token value.
	// Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, credentials models.CredentialsRequest) (models.Token, error)

	// GetProducts fetches one page of the catalogue. Pages are 1-based; a
	// page past the end of the catalogue yields an empty slice.
	GetProducts(ctx context.Context, page int64) ([]models.Product, error)

	// GetProduct fetches a single product by its identifier. Returns
	// [ErrNotFound] (wrapped) if no such product exists.
	GetProduct(ctx context.Context, productID int64) (models.Product, error)

	// CreateProduct adds a new product to the catalogue and returns the
	// stored record with its assigned identifier. Requires a bearer token.
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)

	// UpdateProduct applies a partial update to an existing product and
	// returns the updated record. Requires a bearer token.
	UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error)

	// DeleteProduct removes a product from the catalogue. Requires a bearer
	// token.
	DeleteProduct(ctx context.Context, productID int64) error

	// AddToCart reserves one unit of the product for the user's cart.
	// Returns [ErrConflict] (wrapped) when the product is out of stock.
	// Requires a bearer token belonging to userID.
	AddToCart(ctx context.Context, userID, productID int64) error

	// RemoveFromCart releases one unit of the product from the user's cart
	// back to stock. Requires a bearer token belonging to userID.
	RemoveFromCart(ctx context.Context, userID, productID int64) error

	// ShowCart fetches the contents of the user's cart. Requires a bearer
	// token belonging to userID.
	ShowCart(ctx context.Context, userID int64) ([]models.CartEntry, error)
}
