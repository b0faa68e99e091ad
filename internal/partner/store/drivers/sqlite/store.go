// Package sqlite opens a store.Store backed by an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/kidventure/partnerhub/internal/partner/store/sqlstore"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect is the SQLite flavour of the shared queries.
var Dialect = sqlstore.Dialect{
	Name:              "sqlite",
	IsUniqueViolation: isUniqueViolation,
}

// NewStore opens dsn, which may be a file path or ":memory:".
//
// SQLite allows one writer at a time, so the pool is pinned to a single
// connection. Transactions queue on it instead of failing with SQLITE_BUSY,
// and an in-memory database stays the same database for the life of the
// Store.
func NewStore(dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sqlstore.New(db, Dialect, ApplyMigrations), nil
}

// withPragmas enforces FKs on every connection the pool opens.
func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
