// Package sqlstore implements store.Store on database/sql. Queries are
// written once with "?" placeholders; a Dialect adapts them to the driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/store"
)

// Dialect captures the differences between the supported databases.
type Dialect struct {
	Name string

	// Numbered placeholders ($1, $2, ...) instead of "?".
	Numbered bool

	// RowLocks enables SELECT ... FOR UPDATE. Without it the database is
	// expected to serialize write transactions on its own.
	RowLocks bool

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation func(error) bool
}

func (d Dialect) forUpdate() string {
	if d.RowLocks {
		return " FOR UPDATE"
	}
	return ""
}

func (d Dialect) rebind(query string) string {
	if !d.Numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 16)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mapWriteErr turns driver unique violations into store.ErrAlreadyExists.
func (d Dialect) mapWriteErr(err error) error {
	if err != nil && d.IsUniqueViolation != nil && d.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type conn struct {
	q querier
	d Dialect
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.d.rebind(query), args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.d.rebind(query), args...)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.d.rebind(query), args...)
}

// insert executes an INSERT and maps unique violations.
func (c conn) insert(ctx context.Context, query string, args ...any) error {
	_, err := c.exec(ctx, query, args...)
	return c.d.mapWriteErr(err)
}

// execOne executes a conditional write and reports store.ErrConflict when
// it touched no rows.
func (c conn) execOne(ctx context.Context, query string, args ...any) error {
	res, err := c.exec(ctx, query, args...)
	if err != nil {
		return c.d.mapWriteErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrConflict
	}
	return nil
}

// lock selects the row of table with id under the dialect's row lock.
func (c conn) lock(ctx context.Context, table, id string) error {
	var got string
	err := c.queryRow(ctx, `SELECT id FROM `+table+` WHERE id = ?`+c.d.forUpdate(), id).Scan(&got)
	return mapNotFound(err)
}

// Migrator applies the driver's embedded schema to db.
type Migrator func(db *sql.DB) error

type Store struct {
	db         *sql.DB
	c          conn
	migrate    Migrator
	afterClose func()
}

// New wraps an open database. The driver packages call it; services only
// see store.Store.
func New(db *sql.DB, d Dialect, m Migrator) *Store {
	return &Store{db: db, c: conn{q: db, d: d}, migrate: m}
}

// DB exposes the pool for driver level concerns such as migrations.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) ApplyMigrations() error {
	if s.migrate == nil {
		return errors.New("sqlstore: no migrator configured")
	}
	return s.migrate(s.db)
}

// AfterClose registers fn to run once the database has been closed, for
// resources the driver opened underneath it.
func (s *Store) AfterClose(fn func()) { s.afterClose = fn }

func (s *Store) Close() error {
	err := s.db.Close()
	if s.afterClose != nil {
		s.afterClose()
	}
	return err
}

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, c: conn{q: tx, d: s.c.d}}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Organizations() store.Organizations   { return &organizationsRepo{c: s.c} }
func (s *Store) Locations() store.Locations           { return &locationsRepo{c: s.c} }
func (s *Store) Accounts() store.Accounts             { return &accountsRepo{c: s.c} }
func (s *Store) Invitations() store.Invitations       { return &invitationsRepo{c: s.c} }
func (s *Store) ClassTemplates() store.ClassTemplates { return &classTemplatesRepo{c: s.c} }
func (s *Store) ClassSessions() store.ClassSessions   { return &classSessionsRepo{c: s.c} }
func (s *Store) Bookings() store.Bookings             { return &bookingsRepo{c: s.c} }
func (s *Store) Payouts() store.Payouts               { return &payoutsRepo{c: s.c} }
func (s *Store) Disputes() store.Disputes             { return &disputesRepo{c: s.c} }
func (s *Store) RefreshTokens() store.RefreshTokens   { return &refreshTokensRepo{c: s.c} }
func (s *Store) MFASessions() store.MFASessions       { return &mfaSessionsRepo{c: s.c} }
func (s *Store) PasswordResets() store.PasswordResets { return &passwordResetsRepo{c: s.c} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapNullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	v := nt.Time.UTC()
	return &v
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func mapNullIntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func mapOptionalInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func joinFields(v []string) string { return strings.Join(v, " ") }

func splitFields(s string) []string { return strings.Fields(s) }

// placeholders returns "?, ?, ?" for n values.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
