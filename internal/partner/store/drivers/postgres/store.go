// Package postgres opens a store.Store backed by PostgreSQL through pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/kidventure/partnerhub/internal/partner/store/sqlstore"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const uniqueViolation = "23505"

var Dialect = sqlstore.Dialect{
	Name:              "postgres",
	Numbered:          true,
	RowLocks:          true,
	IsUniqueViolation: isUniqueViolation,
}

// Options tunes the connection pool. Zero values keep pgx defaults.
type Options struct {
	MaxConns int32
	MinConns int32
}

func NewStore(ctx context.Context, dsn string, opts Options) (*sqlstore.Store, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		config.MinConns = opts.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	s := sqlstore.New(stdlib.OpenDBFromPool(pool), Dialect, ApplyMigrations)
	s.AfterClose(pool.Close)
	return s, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
