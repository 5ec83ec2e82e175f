package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. It manages the "products" table: catalog creation,
// paginated listing, single-product lookup, partial updates, and removal.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct persists a new catalog entry and returns the fully populated
// [models.Product] with server-assigned fields (ProductID, CreatedAt).
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct,
		product.Name, product.Description, product.Price, product.Quantity, string(product.Category))

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: row is nil")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&product.ProductID, &product.Name, &product.Description,
		&product.Price, &product.Quantity, &product.Category, &product.CreatedAt); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: scanning error")
		return models.Product{}, err
	}

	return product, nil
}

// GetProducts returns one page of the catalog ordered by product id.
// Pages are 1-based; pages past the end of the catalog yield an empty slice.
func (r *productRepository) GetProducts(ctx context.Context, page int64) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProductsQuery(page)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.GetProducts").
			Int64("page", page).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.GetProducts").
			Int64("page", page).
			Msg("failed to execute query for getting products page")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, pageSize)

	for rows.Next() {
		var product models.Product

		scanErr := rows.Scan(
			&product.ProductID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Quantity,
			&product.Category,
			&product.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*productRepository.GetProducts").
				Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*productRepository.GetProducts").
			Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// GetProductByID retrieves a single catalog entry.
// Returns [ErrNoProductWasFound] when no such product exists.
func (r *productRepository) GetProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	var product models.Product
	row := r.db.QueryRowContext(ctx, getProductByID, productID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.GetProductByID").Msg("error: row is nil")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&product.ProductID, &product.Name, &product.Description,
		&product.Price, &product.Quantity, &product.Category, &product.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNoProductWasFound
		}
		log.Err(err).Str("func", "*productRepository.GetProductByID").Msg("error: scanning error")
		return models.Product{}, err
	}

	return product, nil
}

// UpdateProduct applies a partial update to a catalog entry and returns its
// new state. Only the fields set in the update are written.
//
// Returns [ErrEmptyProductUpdate] when the update carries no fields and
// [ErrNoProductWasFound] when the product does not exist.
func (r *productRepository) UpdateProduct(ctx context.Context, productID int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(productID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.UpdateProduct").
			Int64("product_id", productID).
			Msg("failed to create query")
		return models.Product{}, err
	}

	var product models.Product
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: row is nil")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&product.ProductID, &product.Name, &product.Description,
		&product.Price, &product.Quantity, &product.Category, &product.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNoProductWasFound
		}
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: scanning error")
		return models.Product{}, err
	}

	return product, nil
}

// DeleteProduct removes a catalog entry together with its cart lines
// (via ON DELETE CASCADE). Returns [ErrNoProductWasFound] when the product
// does not exist.
func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProduct, productID)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.DeleteProduct").
			Int64("product_id", productID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoProductWasFound
	}

	return nil
}
