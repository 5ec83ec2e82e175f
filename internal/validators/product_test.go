package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmarnet/go-shop/models"
)

func validProduct() models.Product {
	return models.Product{
		Name:        "Milk",
		Description: "Whole milk, 1L",
		Price:       1.99,
		Quantity:    50,
		Category:    models.CategoryFood,
	}
}

func TestProductValidator_ValidateProduct(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Product)
		wantErr error
	}{
		{
			name:   "valid product",
			mutate: func(*models.Product) {},
		},
		{
			name:    "name too short",
			mutate:  func(p *models.Product) { p.Name = "x" },
			wantErr: ErrInvalidProductName,
		},
		{
			name:    "name too long",
			mutate:  func(p *models.Product) { p.Name = strings.Repeat("x", 101) },
			wantErr: ErrInvalidProductName,
		},
		{
			name:    "description too long",
			mutate:  func(p *models.Product) { p.Description = strings.Repeat("x", 501) },
			wantErr: ErrLongDescription,
		},
		{
			name:    "negative price",
			mutate:  func(p *models.Product) { p.Price = -1 },
			wantErr: ErrNegativePrice,
		},
		{
			name:    "negative quantity",
			mutate:  func(p *models.Product) { p.Quantity = -1 },
			wantErr: ErrNegativeQuantity,
		},
		{
			name:    "unknown category",
			mutate:  func(p *models.Product) { p.Category = "Electronics" },
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := validProduct()
			tt.mutate(&product)

			err := v.Validate(ctx, product)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProductValidator_ValidateProductUpdate(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	goodName := "Oat milk"
	badName := "x"
	negativePrice := -0.01
	badCategory := models.Category("Electronics")

	tests := []struct {
		name    string
		update  models.ProductUpdate
		wantErr error
	}{
		{
			name:   "single valid field",
			update: models.ProductUpdate{Name: &goodName},
		},
		{
			name:    "empty update",
			update:  models.ProductUpdate{},
			wantErr: ErrNoFieldsToUpdate,
		},
		{
			name:    "invalid name",
			update:  models.ProductUpdate{Name: &badName},
			wantErr: ErrInvalidProductName,
		},
		{
			name:    "negative price",
			update:  models.ProductUpdate{Price: &negativePrice},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "invalid category",
			update:  models.ProductUpdate{Category: &badCategory},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProductValidator_FieldScoping(t *testing.T) {
	v := NewProductValidator()

	product := validProduct()
	product.Price = -5

	// scoped to name only, the bad price is not checked
	err := v.Validate(context.Background(), product, FieldName)

	assert.NoError(t, err)
}
