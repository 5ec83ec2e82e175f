package store

import (
	"github.com/tmarnet/go-shop/migrations"
)

// Migrate applies all embedded goose migrations against the wrapped
// connection, bringing the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
