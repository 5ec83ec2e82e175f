package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarnet/go-shop/internal/store"
	"github.com/tmarnet/go-shop/internal/utils"
	"github.com/tmarnet/go-shop/models"
)

// asUser attaches an authenticated user id to the request context, mimicking
// what the auth middleware does for a valid bearer token.
func asUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}

func cartRequestBody(t *testing.T, userID, productID int64) string {
	t.Helper()
	return jsonBody(t, models.CartRequest{UserID: userID, ProductID: productID})
}

func TestAddToCart(t *testing.T) {
	cart := &mockCartService{
		addToCartFn: func(_ context.Context, userID, productID int64) error {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(5), productID)
			return nil
		},
	}

	h := newTestHandler(t, nil, nil, cart)
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(cartRequestBody(t, 1, 5))), 1)
	rec := httptest.NewRecorder()

	h.addToCart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestAddToCart_ForeignCart verifies that a caller cannot add items to
// another user's cart.
func TestAddToCart_ForeignCart(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockCartService{})
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(cartRequestBody(t, 2, 5))), 1)
	rec := httptest.NewRecorder()

	h.addToCart(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddToCart_NoContextUser(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockCartService{})
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(cartRequestBody(t, 1, 5)))
	rec := httptest.NewRecorder()

	h.addToCart(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddToCart_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "product not found", err: store.ErrNoProductWasFound, wantStatus: http.StatusNotFound},
		{name: "out of stock", err: store.ErrProductOutOfStock, wantStatus: http.StatusConflict},
		{name: "user not found", err: store.ErrNoUserWasFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &mockCartService{
				addToCartFn: func(_ context.Context, _, _ int64) error {
					return tt.err
				},
			}

			h := newTestHandler(t, nil, nil, cart)
			req := asUser(httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(cartRequestBody(t, 1, 5))), 1)
			rec := httptest.NewRecorder()

			h.addToCart(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAddToCart_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockCartService{})
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader("{")), 1)
	rec := httptest.NewRecorder()

	h.addToCart(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFromCart(t *testing.T) {
	cart := &mockCartService{
		removeFromCartFn: func(_ context.Context, userID, productID int64) error {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(5), productID)
			return nil
		},
	}

	h := newTestHandler(t, nil, nil, cart)
	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/cart", strings.NewReader(cartRequestBody(t, 1, 5))), 1)
	rec := httptest.NewRecorder()

	h.removeFromCart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRemoveFromCart_NotInCart(t *testing.T) {
	cart := &mockCartService{
		removeFromCartFn: func(_ context.Context, _, _ int64) error {
			return store.ErrProductNotInCart
		},
	}

	h := newTestHandler(t, nil, nil, cart)
	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/cart", strings.NewReader(cartRequestBody(t, 1, 5))), 1)
	rec := httptest.NewRecorder()

	h.removeFromCart(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowCart(t *testing.T) {
	entries := []models.CartEntry{
		{Name: "Milk", Description: "Whole milk, 1L", Price: 1.99, Category: models.CategoryFood, Quantity: 2},
	}
	cart := &mockCartService{
		showCartFn: func(_ context.Context, userID int64) ([]models.CartEntry, error) {
			assert.Equal(t, int64(1), userID)
			return entries, nil
		},
	}

	h := newTestHandler(t, nil, nil, cart)
	req := asUser(withURLParam(httptest.NewRequest(http.MethodGet, "/api/cart/1", nil), "userID", "1"), 1)
	rec := httptest.NewRecorder()

	h.showCart(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.CartEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, entries, got)
}

// TestShowCart_ForeignCart verifies that a caller cannot read another user's
// cart.
func TestShowCart_ForeignCart(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockCartService{})
	req := asUser(withURLParam(httptest.NewRequest(http.MethodGet, "/api/cart/2", nil), "userID", "2"), 1)
	rec := httptest.NewRecorder()

	h.showCart(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestShowCart_BadUserID(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockCartService{})
	req := asUser(withURLParam(httptest.NewRequest(http.MethodGet, "/api/cart/abc", nil), "userID", "abc"), 1)
	rec := httptest.NewRecorder()

	h.showCart(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
