package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/models"
)

// maxTxAttempts bounds how many times a cart transaction is retried when the
// database reports a retryable failure (deadlock, serialization conflict,
// transient connection loss).
const maxTxAttempts = 3

// cartRepository is the PostgreSQL-backed implementation of [CartRepository].
//
// Each mutation runs in a single transaction so that the stock decrement and
// the cart line change land together or not at all. Stock is guarded by a
// conditional UPDATE, which keeps concurrent carts from overselling a product.
type cartRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCartRepository constructs a [CartRepository] backed by the provided
// database connection and logger.
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

// AddItem moves one unit of the product from stock into the user's cart.
//
// Error handling:
//   - Product does not exist → [ErrNoProductWasFound].
//   - Stock is exhausted → [ErrProductOutOfStock].
//   - Retryable database failures are retried up to [maxTxAttempts] times.
func (r *cartRepository) AddItem(ctx context.Context, userID int64, productID int64) error {
	return r.inRetryableTx(ctx, "*cartRepository.AddItem", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, takeProductUnit, productID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if affected == 0 {
			// The guard rejected the decrement: either the product is gone
			// or its stock is zero. Look it up to tell the two apart.
			var quantity int64
			row := tx.QueryRowContext(ctx, `SELECT quantity FROM products WHERE product_id = $1;`, productID)
			if scanErr := row.Scan(&quantity); scanErr != nil {
				if errors.Is(scanErr, sql.ErrNoRows) {
					return ErrNoProductWasFound
				}
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			return ErrProductOutOfStock
		}

		if _, err := tx.ExecContext(ctx, upsertCartLine, userID, productID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}

// RemoveItem moves one unit of the product from the user's cart back into
// stock. A line holding its last unit is deleted outright; larger lines are
// decremented, so a persisted line never drops below quantity 1.
//
// Error handling:
//   - Product does not exist → [ErrNoProductWasFound].
//   - The cart has no line for the product → [ErrProductNotInCart].
//
// Stock is left untouched in both error cases.
func (r *cartRepository) RemoveItem(ctx context.Context, userID int64, productID int64) error {
	return r.inRetryableTx(ctx, "*cartRepository.RemoveItem", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, deleteSingleCartLine, userID, productID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if affected == 0 {
			result, err = tx.ExecContext(ctx, decrementCartLine, userID, productID)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			affected, err = result.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			if affected == 0 {
				// No line was touched: either the product is gone or the
				// cart never held it. Look it up to tell the two apart.
				var quantity int64
				row := tx.QueryRowContext(ctx, `SELECT quantity FROM products WHERE product_id = $1;`, productID)
				if scanErr := row.Scan(&quantity); scanErr != nil {
					if errors.Is(scanErr, sql.ErrNoRows) {
						return ErrNoProductWasFound
					}
					return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
				}
				return ErrProductNotInCart
			}
		}

		if _, err := tx.ExecContext(ctx, returnProductUnit, productID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}

// GetCart returns the contents of the user's cart as catalog projections
// joined with the product table. An empty cart yields an empty slice.
func (r *cartRepository) GetCart(ctx context.Context, userID int64) ([]models.CartEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCart, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*cartRepository.GetCart").
			Int64("user_id", userID).
			Msg("failed to execute query for getting cart contents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.CartEntry, 0, 10)

	for rows.Next() {
		var entry models.CartEntry

		scanErr := rows.Scan(
			&entry.Name,
			&entry.Description,
			&entry.Price,
			&entry.Category,
			&entry.Quantity,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*cartRepository.GetCart").
				Msg("failed to scan cart row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*cartRepository.GetCart").
			Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// inRetryableTx runs fn inside a transaction and retries the whole
// transaction when the error classifier reports the failure as retryable.
// Domain sentinel errors pass through unchanged.
func (r *cartRepository) inRetryableTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}

		err = fn(tx)
		if err == nil {
			if commitErr := tx.Commit(); commitErr != nil {
				log.Err(commitErr).Str("func", funcName).Msg("failed to commit transaction")
				lastErr = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
				if r.db.errorClassificator.Classify(commitErr) == Retryable {
					continue
				}
				return lastErr
			}
			return nil
		}

		_ = tx.Rollback()

		if r.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().
			Str("func", funcName).
			Int("attempt", attempt).
			Err(err).
			Msg("retryable database error, retrying transaction")
		lastErr = err
	}

	return lastErr
}
