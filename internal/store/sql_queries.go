package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/tmarnet/go-shop/models"
)

// pageSize is the number of products returned by one catalog page.
const pageSize = 10

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createProduct = `INSERT INTO products (name, description, price, quantity, category)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING product_id, name, description, price, quantity, category, created_at;`

	getProductByID = `SELECT product_id, name, description, price, quantity, category, created_at
    FROM products
    WHERE product_id = $1;`

	deleteProduct = `DELETE FROM products
    WHERE product_id = $1;`

	// takeProductUnit moves one unit out of stock. The quantity guard makes
	// the decrement conditional, so concurrent carts can never drive the
	// stock below zero.
	takeProductUnit = `UPDATE products
    SET quantity = quantity - 1
    WHERE product_id = $1 AND quantity > 0;`

	// returnProductUnit moves one unit back into stock.
	returnProductUnit = `UPDATE products
    SET quantity = quantity + 1
    WHERE product_id = $1;`

	upsertCartLine = `INSERT INTO cart_items (user_id, product_id, quantity)
    VALUES ($1, $2, 1)
    ON CONFLICT (user_id, product_id) DO UPDATE
    SET quantity = cart_items.quantity + 1;`

	// deleteSingleCartLine removes a cart line holding its last unit. The
	// removal is split into a conditional DELETE and a conditional decrement
	// because persisted lines must keep quantity >= 1 (schema CHECK, not
	// deferrable): an unconditional decrement would write 0 before any
	// cleanup DELETE could run.
	deleteSingleCartLine = `DELETE FROM cart_items
    WHERE user_id = $1 AND product_id = $2 AND quantity = 1;`

	decrementCartLine = `UPDATE cart_items
    SET quantity = quantity - 1
    WHERE user_id = $1 AND product_id = $2 AND quantity > 1;`

	getCart = `SELECT p.name, p.description, p.price, p.category, c.quantity
    FROM cart_items c
    JOIN products p ON p.product_id = c.product_id
    WHERE c.user_id = $1
    ORDER BY p.product_id;`
)

// buildGetProductsQuery builds a paginated catalog SELECT. Pages are
// 1-based; any page below 1 is clamped to the first page.
func buildGetProductsQuery(page int64) (string, []any, error) {
	if page < 1 {
		page = 1
	}

	query, args, err := sq.
		Select("product_id", "name", "description", "price", "quantity", "category", "created_at").
		From("products").
		OrderBy("product_id").
		Limit(pageSize).
		Offset(uint64(page-1) * pageSize).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateProductQuery builds a partial UPDATE that sets only the fields
// present in the update. Returns [ErrEmptyProductUpdate] when no field is set.
func buildUpdateProductQuery(productID int64, update models.ProductUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrEmptyProductUpdate
	}

	builder := sq.Update("products")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Quantity != nil {
		builder = builder.Set("quantity", *update.Quantity)
	}
	if update.Category != nil {
		builder = builder.Set("category", string(*update.Category))
	}

	query, args, err := builder.
		Where(sq.Eq{"product_id": productID}).
		Suffix("RETURNING product_id, name, description, price, quantity, category, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
