package service

import (
	"context"
	"fmt"

	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/internal/store"
	"github.com/tmarnet/go-shop/models"
)

// catalogService is the concrete implementation of CatalogService. It is a
// thin orchestration layer over the ProductRepository; input validation is
// applied separately through [CatalogValidationService].
type catalogService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

// NewCatalogService constructs a CatalogService wired to the given
// ProductRepository.
func NewCatalogService(productRepository store.ProductRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		productRepository: productRepository,
		logger:            logger,
	}
}

// CreateProduct persists a new catalog entry and returns it with
// server-assigned fields populated.
func (c *catalogService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	createdProduct, err := c.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Str("name", product.Name).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return createdProduct, nil
}

// GetProducts returns one 1-based page of the catalog.
func (c *catalogService) GetProducts(ctx context.Context, page int64) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := c.productRepository.GetProducts(ctx, page)
	if err != nil {
		log.Err(err).Int64("page", page).Msg("products page retrieval ended with error")
		return nil, fmt.Errorf("products page retrieval ended with error: %w", err)
	}

	return products, nil
}

// GetProductByID returns a single catalog entry.
func (c *catalogService) GetProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := c.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		log.Err(err).Int64("product_id", productID).Msg("product retrieval ended with error")
		return models.Product{}, fmt.Errorf("product retrieval ended with error: %w", err)
	}

	return product, nil
}

// UpdateProduct applies a partial update and returns the product's new state.
func (c *catalogService) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	updatedProduct, err := c.productRepository.UpdateProduct(ctx, productID, update)
	if err != nil {
		log.Err(err).Int64("product_id", productID).Msg("product update ended with error")
		return models.Product{}, fmt.Errorf("product update ended with error: %w", err)
	}

	return updatedProduct, nil
}

// DeleteProduct removes a catalog entry.
func (c *catalogService) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	if err := c.productRepository.DeleteProduct(ctx, productID); err != nil {
		log.Err(err).Int64("product_id", productID).Msg("product deletion ended with error")
		return fmt.Errorf("product deletion ended with error: %w", err)
	}

	return nil
}
