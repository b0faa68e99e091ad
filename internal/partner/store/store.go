package store

import (
	"context"
	"errors"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a conditional write whose predicate matched no
	// row, i.e. another writer got there first.
	ErrConflict = errors.New("store: conditional update matched no rows")
)

// Store is the root data access interface. Drivers (sqlite, postgres)
// implement it through sqlstore. Sub-repositories are reached through
// methods so a Tx exposes exactly the same surface as the Store.
type Store interface {
	Organizations() Organizations
	Locations() Locations
	Accounts() Accounts
	Invitations() Invitations
	ClassTemplates() ClassTemplates
	ClassSessions() ClassSessions
	Bookings() Bookings
	Payouts() Payouts
	Disputes() Disputes
	RefreshTokens() RefreshTokens
	MFASessions() MFASessions
	PasswordResets() PasswordResets

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or
	// Rollback the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil. fn
	// must only use the tx it is given.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction scoped Store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Organizations interface {
	Create(ctx context.Context, o domain.Organization) error
	Get(ctx context.Context, id string) (domain.Organization, error)
	UpdateDisplayName(ctx context.Context, id, name string, now time.Time) error

	// Lock holds the organization row until the transaction ends, which
	// serializes writers that check-then-insert per organization. It
	// returns ErrNotFound when the organization does not exist.
	Lock(ctx context.Context, id string) error
}

type Locations interface {
	Create(ctx context.Context, l domain.Location) error
	Get(ctx context.Context, id string) (domain.Location, error)

	// ListByOrganization returns locations ordered by name.
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Location, error)
}

type Accounts interface {
	// Create returns ErrAlreadyExists when the email belongs to another
	// active account. Removed accounts keep their email but do not block it.
	Create(ctx context.Context, a domain.Account) error
	Get(ctx context.Context, id string) (domain.Account, error)

	// GetByEmail matches the lower-cased email, preferring the active
	// account over removed ones.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// ListByOrganization returns every account, removed ones included,
	// oldest first.
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Account, error)

	// Remove moves an active account of orgID to removed. It returns
	// ErrConflict when no active account matched.
	Remove(ctx context.Context, id, orgID string, now time.Time) error

	SetMFASecret(ctx context.Context, id, secret string, now time.Time) error
	EnableMFA(ctx context.Context, id string, now time.Time) error

	// DisableMFA clears both the secret and the enabled timestamp.
	DisableMFA(ctx context.Context, id string, now time.Time) error

	// SetPassword replaces the hash of an active account. It returns
	// ErrConflict when no active account matched.
	SetPassword(ctx context.Context, id, hash string, now time.Time) error
}

type Invitations interface {
	// Create returns ErrAlreadyExists on a token hash collision.
	Create(ctx context.Context, inv domain.Invitation) error
	Get(ctx context.Context, id string) (domain.Invitation, error)

	// GetByTokenHash returns the invitation regardless of claim or expiry
	// state so callers can tell the cases apart.
	GetByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// Claim binds the invitation to accountID if, and only if, id and hash
	// match, it is unclaimed, and it has not expired at now. It returns
	// ErrConflict when the predicate matched nothing.
	Claim(ctx context.Context, id, hash, accountID string, now time.Time) error

	// ListPending returns unclaimed, unexpired invitations of orgID.
	ListPending(ctx context.Context, orgID string, now time.Time) ([]domain.Invitation, error)
}

type ClassTemplates interface {
	Create(ctx context.Context, t domain.ClassTemplate) error
	Get(ctx context.Context, id string) (domain.ClassTemplate, error)
	ListByOrganization(ctx context.Context, orgID string) ([]domain.ClassTemplate, error)
}

type ClassSessions interface {
	Create(ctx context.Context, s domain.ClassSession) error
	Get(ctx context.Context, id string) (domain.SessionView, error)

	// List returns sessions of orgID starting within the filter bounds,
	// ordered by start time.
	List(ctx context.Context, orgID string, f domain.SessionFilter) ([]domain.SessionView, error)

	// Update writes times, capacities and status of s. It returns
	// ErrConflict when the session is missing or canceled.
	Update(ctx context.Context, s domain.ClassSession) error

	// Lock holds the session row until the transaction ends. It returns
	// ErrNotFound when the session does not exist.
	Lock(ctx context.Context, id string) error

	// SetStatus moves a session from one of from to status. It returns
	// ErrConflict when the session is not in any of from.
	SetStatus(ctx context.Context, id string, status domain.SessionStatus, from []domain.SessionStatus, now time.Time) error
}

type Bookings interface {
	Create(ctx context.Context, b domain.Booking) error

	// GetByTokenHash returns the booking with its session facts.
	GetByTokenHash(ctx context.Context, hash string) (domain.BookingContext, error)
	Get(ctx context.Context, id string) (domain.BookingContext, error)

	// MarkCheckedIn moves an unused booking to checked_in. It returns
	// ErrConflict when the booking was no longer unused.
	MarkCheckedIn(ctx context.Context, id, byAccountID string, at time.Time) error

	// ListCheckins returns checked in bookings of orgID whose session
	// starts within the filter bounds, newest session first.
	ListCheckins(ctx context.Context, orgID string, f domain.AttendanceFilter) ([]domain.CheckinRecord, error)
}

type Payouts interface {
	Create(ctx context.Context, p domain.Payout) error

	// ListByOrganization returns batches newest period first.
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Payout, error)
}

type Disputes interface {
	Create(ctx context.Context, d domain.Dispute) error
	ListByOrganization(ctx context.Context, orgID string) ([]domain.Dispute, error)
}

type RefreshTokens interface {
	Create(ctx context.Context, t domain.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// Revoke marks the token revoked. It returns ErrConflict when it was
	// already revoked so a rotation can only happen once.
	Revoke(ctx context.Context, hash string, now time.Time) error

	RevokeAllForAccount(ctx context.Context, accountID string, now time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type MFASessions interface {
	Create(ctx context.Context, s domain.MFASession) error

	// Get only returns sessions that have not expired at now.
	Get(ctx context.Context, id string, now time.Time) (domain.MFASession, error)

	// IncrementAttempts bumps the failure counter and returns the session.
	IncrementAttempts(ctx context.Context, id string) (domain.MFASession, error)

	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type PasswordResets interface {
	// Create returns ErrAlreadyExists on a token hash collision.
	Create(ctx context.Context, r domain.PasswordReset) error

	// GetByTokenHash returns the reset regardless of use or expiry.
	GetByTokenHash(ctx context.Context, hash string) (domain.PasswordReset, error)

	// Consume marks the reset used if, and only if, id and hash match, it
	// is unused, and it has not expired at now. It returns ErrConflict
	// when the predicate matched nothing.
	Consume(ctx context.Context, id, hash string, now time.Time) error

	// ConsumeAllForAccount marks every unused reset of accountID used.
	ConsumeAllForAccount(ctx context.Context, accountID string, now time.Time) error

	// DeleteExpired removes resets that expired at or before now, used or
	// not.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
