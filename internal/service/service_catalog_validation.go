package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmarnet/go-shop/internal/validators"
	"github.com/tmarnet/go-shop/models"
)

// CatalogValidationService decorates a CatalogService with input validation.
// Writes are checked against the product rules before reaching the inner
// service; reads pass through untouched.
type CatalogValidationService struct {
	inner     CatalogService
	validator validators.Validator
}

// NewCatalogValidationService constructs the validation decorator. Call Wrap
// to attach the inner CatalogService.
func NewCatalogValidationService() CatalogServiceWrapper {
	return &CatalogValidationService{
		validator: validators.NewProductValidator(),
	}
}

func (v *CatalogValidationService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	product.Name = strings.TrimSpace(product.Name)

	if err := v.validator.Validate(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateProduct(ctx, product)
}

func (v *CatalogValidationService) GetProducts(ctx context.Context, page int64) ([]models.Product, error) {
	return v.inner.GetProducts(ctx, page)
}

func (v *CatalogValidationService) GetProductByID(ctx context.Context, productID int64) (models.Product, error) {
	return v.inner.GetProductByID(ctx, productID)
}

func (v *CatalogValidationService) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}

	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProduct(ctx, productID, update)
}

func (v *CatalogValidationService) DeleteProduct(ctx context.Context, productID int64) error {
	return v.inner.DeleteProduct(ctx, productID)
}

// Wrap attaches the inner CatalogService and returns the decorated service.
func (v *CatalogValidationService) Wrap(inner CatalogService) CatalogService {
	v.inner = inner
	return v
}
