// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/internal/service"
	"github.com/tmarnet/go-shop/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.CredentialsRequest) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.CredentialsRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.CredentialsRequest) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.CredentialsRequest) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock CatalogService
// ─────────────────────────────────────────────

type mockCatalogService struct {
	createProductFn  func(ctx context.Context, product models.Product) (models.Product, error)
	getProductsFn    func(ctx context.Context, page int64) ([]models.Product, error)
	getProductByIDFn func(ctx context.Context, productID int64) (models.Product, error)
	updateProductFn  func(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error)
	deleteProductFn  func(ctx context.Context, productID int64) error
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return m.createProductFn(ctx, product)
}

func (m *mockCatalogService) GetProducts(ctx context.Context, page int64) ([]models.Product, error) {
	return m.getProductsFn(ctx, page)
}

func (m *mockCatalogService) GetProductByID(ctx context.Context, productID int64) (models.Product, error) {
	return m.getProductByIDFn(ctx, productID)
}

func (m *mockCatalogService) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	return m.updateProductFn(ctx, productID, update)
}

func (m *mockCatalogService) DeleteProduct(ctx context.Context, productID int64) error {
	return m.deleteProductFn(ctx, productID)
}

// ─────────────────────────────────────────────
// Mock CartService
// ─────────────────────────────────────────────

type mockCartService struct {
	addToCartFn      func(ctx context.Context, userID, productID int64) error
	removeFromCartFn func(ctx context.Context, userID, productID int64) error
	showCartFn       func(ctx context.Context, userID int64) ([]models.CartEntry, error)
}

func (m *mockCartService) AddToCart(ctx context.Context, userID, productID int64) error {
	return m.addToCartFn(ctx, userID, productID)
}

func (m *mockCartService) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	return m.removeFromCartFn(ctx, userID, productID)
}

func (m *mockCartService) ShowCart(ctx context.Context, userID int64) ([]models.CartEntry, error) {
	return m.showCartFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the supplied service mocks. Nil
// mocks are fine for handlers the test never reaches.
func newTestHandler(t *testing.T, auth service.AuthService, catalog service.CatalogService, cart service.CartService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		CatalogService: catalog,
		CartService:    cart,
	}
	return NewHandler(svcs, "test", logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
