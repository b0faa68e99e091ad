package sqlstore

import (
	"context"
	"database/sql"

	"github.com/kidventure/partnerhub/internal/partner/store"
)

type txStore struct {
	tx *sql.Tx
	c  conn
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// The outer Store owns the pool; a transaction has nothing to close, ping or
// migrate.
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error         { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Organizations() store.Organizations   { return &organizationsRepo{c: t.c} }
func (t *txStore) Locations() store.Locations           { return &locationsRepo{c: t.c} }
func (t *txStore) Accounts() store.Accounts             { return &accountsRepo{c: t.c} }
func (t *txStore) Invitations() store.Invitations       { return &invitationsRepo{c: t.c} }
func (t *txStore) ClassTemplates() store.ClassTemplates { return &classTemplatesRepo{c: t.c} }
func (t *txStore) ClassSessions() store.ClassSessions   { return &classSessionsRepo{c: t.c} }
func (t *txStore) Bookings() store.Bookings             { return &bookingsRepo{c: t.c} }
func (t *txStore) Payouts() store.Payouts               { return &payoutsRepo{c: t.c} }
func (t *txStore) Disputes() store.Disputes             { return &disputesRepo{c: t.c} }
func (t *txStore) RefreshTokens() store.RefreshTokens   { return &refreshTokensRepo{c: t.c} }
func (t *txStore) MFASessions() store.MFASessions       { return &mfaSessionsRepo{c: t.c} }
func (t *txStore) PasswordResets() store.PasswordResets { return &passwordResetsRepo{c: t.c} }
