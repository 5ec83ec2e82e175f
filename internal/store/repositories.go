package store

import (
	"github.com/tmarnet/go-shop/internal/logger"
)

// Repositories bundles all persistence interfaces consumed by the service
// layer.
type Repositories struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	CartRepository    CartRepository
}

// NewRepositories constructs PostgreSQL-backed repositories sharing one
// database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		CartRepository:    NewCartRepository(db, log),
	}
}

// NewInMemoryRepositories constructs repositories backed by a single shared
// in-memory store. Used when no database DSN is configured.
func NewInMemoryRepositories(log *logger.Logger) *Repositories {
	mem := NewInMemory(log)
	return &Repositories{
		UserRepository:    mem,
		ProductRepository: mem,
		CartRepository:    mem,
	}
}
