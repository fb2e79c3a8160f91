package store

import (
	"database/sql"

	"github.com/sharemycard/cardsync/internal/logger"
)

// DB wraps a database handle together with the store's logger. The same
// wrapper serves the server's PostgreSQL pool and the client's SQLite
// cache; the repositories built on top differ.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.DB.Close()
}
