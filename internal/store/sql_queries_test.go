package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmarnet/go-shop/models"
)

func TestBuildGetProductsQuery(t *testing.T) {
	tests := []struct {
		name       string
		page       int64
		wantOffset any
	}{
		{name: "first page", page: 1, wantOffset: uint64(0)},
		{name: "second page", page: 2, wantOffset: uint64(10)},
		{name: "page below one is clamped", page: 0, wantOffset: uint64(0)},
		{name: "negative page is clamped", page: -5, wantOffset: uint64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetProductsQuery(tt.page)

			require.NoError(t, err)
			assert.Contains(t, query, "FROM products")
			assert.Contains(t, query, "ORDER BY product_id")
			assert.Contains(t, query, "LIMIT 10")
			// squirrel inlines LIMIT/OFFSET, so no placeholder args remain
			assert.Empty(t, args)
			assert.Contains(t, query, "OFFSET")
		})
	}
}

func TestBuildUpdateProductQuery(t *testing.T) {
	name := "Milk"
	price := 2.49
	quantity := int64(10)
	category := models.CategoryFood

	t.Run("all fields", func(t *testing.T) {
		update := models.ProductUpdate{
			Name:     &name,
			Price:    &price,
			Quantity: &quantity,
			Category: &category,
		}

		query, args, err := buildUpdateProductQuery(7, update)

		require.NoError(t, err)
		assert.Contains(t, query, "UPDATE products SET")
		assert.Contains(t, query, "name = $1")
		assert.Contains(t, query, "RETURNING product_id")
		// field args followed by the product id
		assert.Equal(t, []any{name, price, quantity, "Food", int64(7)}, args)
	})

	t.Run("single field", func(t *testing.T) {
		update := models.ProductUpdate{Price: &price}

		query, args, err := buildUpdateProductQuery(7, update)

		require.NoError(t, err)
		assert.Contains(t, query, "price = $1")
		assert.NotContains(t, query, "name =")
		assert.Equal(t, []any{price, int64(7)}, args)
	})

	t.Run("empty update", func(t *testing.T) {
		_, _, err := buildUpdateProductQuery(7, models.ProductUpdate{})

		assert.ErrorIs(t, err, ErrEmptyProductUpdate)
	})
}
