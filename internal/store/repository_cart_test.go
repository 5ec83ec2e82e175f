package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/tmarnet/go-shop/internal/logger"
)

func newTestCartRepo(t *testing.T) (*cartRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &cartRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestAddItem_Success(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.AddItem(ctx, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddItem_OutOfStock(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT quantity FROM products").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.AddItem(ctx, 1, 5)
	if !errors.Is(err, ErrProductOutOfStock) {
		t.Errorf("expected ErrProductOutOfStock, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddItem_ProductNotFound(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT quantity FROM products").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
	mock.ExpectRollback()

	err := repo.AddItem(ctx, 1, 404)
	if !errors.Is(err, ErrNoProductWasFound) {
		t.Errorf("expected ErrNoProductWasFound, got %v", err)
	}
}

func TestAddItem_RetriesOnDeadlock(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	// first attempt hits a deadlock and rolls back
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(5)).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectRollback()

	// second attempt succeeds
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.AddItem(ctx, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddItem_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	for i := 0; i < maxTxAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products").
			WithArgs(int64(5)).
			WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectRollback()
	}

	err := repo.AddItem(ctx, 1, 5)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRemoveItem_DecrementsLargerLine(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	// the line holds more than one unit: the conditional DELETE matches
	// nothing and the decrement takes over
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE cart_items").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.RemoveItem(ctx, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRemoveItem_LastUnitDeletesLine(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	// a line at quantity 1 is removed by the DELETE alone; no decrement runs,
	// so no row ever violates the quantity >= 1 schema constraint
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.RemoveItem(ctx, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRemoveItem_NotInCart(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE cart_items").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT quantity FROM products").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(3))
	mock.ExpectRollback()

	err := repo.RemoveItem(ctx, 1, 5)
	if !errors.Is(err, ErrProductNotInCart) {
		t.Errorf("expected ErrProductNotInCart, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRemoveItem_ProductNotFound(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(int64(1), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE cart_items").
		WithArgs(int64(1), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT quantity FROM products").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
	mock.ExpectRollback()

	err := repo.RemoveItem(ctx, 1, 404)
	if !errors.Is(err, ErrNoProductWasFound) {
		t.Errorf("expected ErrNoProductWasFound, got %v", err)
	}
}

func TestGetCart_Success(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"name", "description", "price", "category", "quantity"}).
		AddRow("Milk", "Whole milk, 1L", 1.99, "Food", 2).
		AddRow("Soap", "Bar soap", 0.99, "Household", 1)

	mock.ExpectQuery("SELECT p.name, p.description, p.price, p.category, c.quantity").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	entries, err := repo.GetCart(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Milk" || entries[0].Quantity != 2 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}

func TestGetCart_Empty(t *testing.T) {
	repo, mock, db := newTestCartRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT p.name, p.description, p.price, p.category, c.quantity").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "description", "price", "category", "quantity"}))

	entries, err := repo.GetCart(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty cart, got %d entries", len(entries))
	}
}
