package validators

import (
	"context"

	"github.com/tmarnet/go-shop/models"
)

// Field name constants for product validation scoping.
const (
	// FieldName targets the product name.
	FieldName = "name"

	// FieldDescription targets the product description.
	FieldDescription = "description"

	// FieldPrice targets the product price.
	FieldPrice = "price"

	// FieldQuantity targets the product stock quantity.
	FieldQuantity = "quantity"

	// FieldCategory targets the product category.
	FieldCategory = "category"
)

// Length bounds for product fields, matching the database schema.
const (
	minProductNameLength = 2
	maxProductNameLength = 100
	maxDescriptionLength = 500
)

// ProductValidator implements the Validator interface for models.Product
// and models.ProductUpdate.
//
// For a full product every field is checked; for an update only the fields
// present in the request are checked, and an update with no fields at all
// is rejected.
type ProductValidator struct {
}

// NewProductValidator constructs a new ProductValidator
// and returns it as the Validator interface.
func NewProductValidator() Validator {
	return &ProductValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both value
// and pointer forms of models.Product and models.ProductUpdate are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		return v.validateProduct(ctx, *value, fields...)

	case models.ProductUpdate:
		return v.validateProductUpdate(ctx, value)
	case *models.ProductUpdate:
		return v.validateProductUpdate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateProduct(_ context.Context, product models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldPrice, FieldQuantity, FieldCategory}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := validateProductName(product.Name); err != nil {
				return err
			}
		case FieldDescription:
			if err := validateDescription(product.Description); err != nil {
				return err
			}
		case FieldPrice:
			if product.Price < 0 {
				return ErrNegativePrice
			}
		case FieldQuantity:
			if product.Quantity < 0 {
				return ErrNegativeQuantity
			}
		case FieldCategory:
			if !product.Category.Valid() {
				return ErrInvalidCategory
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProductValidator) validateProductUpdate(_ context.Context, update models.ProductUpdate) error {
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	if update.Name != nil {
		if err := validateProductName(*update.Name); err != nil {
			return err
		}
	}
	if update.Description != nil {
		if err := validateDescription(*update.Description); err != nil {
			return err
		}
	}
	if update.Price != nil && *update.Price < 0 {
		return ErrNegativePrice
	}
	if update.Quantity != nil && *update.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if update.Category != nil && !update.Category.Valid() {
		return ErrInvalidCategory
	}

	return nil
}

func validateProductName(name string) error {
	if len(name) < minProductNameLength || len(name) > maxProductNameLength {
		return ErrInvalidProductName
	}

	return nil
}

func validateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return ErrLongDescription
	}

	return nil
}
