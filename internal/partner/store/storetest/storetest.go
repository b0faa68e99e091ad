// Package storetest holds fixtures and a conformance suite shared by the
// store drivers and the service tests.
package storetest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/internal/partner/store/drivers/sqlite"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

// OpenSQLite returns a migrated in-memory store closed with the test.
func OpenSQLite(t testing.TB) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// Fixture is a small organization: one location, one class template and a
// manager account.
type Fixture struct {
	Org      domain.Organization
	Location domain.Location
	Template domain.ClassTemplate
	Manager  domain.Account
}

// Seed inserts a Fixture and can be called more than once on a store.
// Times are truncated to the second so values read back compare equal on
// every driver.
func Seed(t testing.TB, s store.Store, now time.Time) Fixture {
	t.Helper()
	ctx := context.Background()
	now = now.UTC().Truncate(time.Second)

	f := Fixture{
		Org: domain.Organization{
			ID:                  idx.New().String(),
			DisplayName:         "Little Sprouts Studio",
			LegalName:           "Little Sprouts LLC",
			Timezone:            "America/New_York",
			CreditValueCents:    250,
			StripeConnectStatus: domain.StripeConnected,
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}
	require.NoError(t, s.Organizations().Create(ctx, f.Org))

	f.Location = domain.Location{
		ID:             idx.New().String(),
		OrganizationID: f.Org.ID,
		Name:           "Main Street",
		Address:        "1 Main St",
		Active:         true,
		CreatedAt:      now,
	}
	require.NoError(t, s.Locations().Create(ctx, f.Location))

	f.Template = domain.ClassTemplate{
		ID:              idx.New().String(),
		OrganizationID:  f.Org.ID,
		Title:           "Tiny Painters",
		Description:     "Finger painting for *little* hands.",
		DurationMinutes: 60,
		CreditsCost:     4,
		CreatedAt:       now,
	}
	require.NoError(t, s.ClassTemplates().Create(ctx, f.Template))

	// The manager email is unique per organization so a store can hold
	// several fixtures.
	f.Manager = AddAccount(t, s, f.Org.ID, "manager+"+strings.ToLower(f.Org.ID)+"@sprouts.example", domain.RoleManager, now)
	return f
}

func AddAccount(t testing.TB, s store.Store, orgID, email string, role domain.Role, now time.Time) domain.Account {
	t.Helper()

	a := domain.Account{
		ID:             idx.New().String(),
		OrganizationID: orgID,
		Email:          email,
		FirstName:      "Pat",
		LastName:       "Jones",
		PasswordHash:   "hash",
		Role:           role,
		Status:         domain.AccountActive,
		CreatedAt:      now.UTC().Truncate(time.Second),
		UpdatedAt:      now.UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Accounts().Create(context.Background(), a))
	return a
}

// AddSession schedules an open session of the fixture template.
func (f Fixture) AddSession(t testing.TB, s store.Store, start time.Time) domain.ClassSession {
	t.Helper()

	start = start.UTC().Truncate(time.Second)
	cs := domain.ClassSession{
		ID:             idx.New().String(),
		OrganizationID: f.Org.ID,
		TemplateID:     f.Template.ID,
		LocationID:     f.Location.ID,
		StartAt:        start,
		EndAt:          start.Add(time.Duration(f.Template.DurationMinutes) * time.Minute),
		CapacityTotal:  12,
		CapacityKVP:    4,
		Status:         domain.SessionOpen,
		CreatedAt:      f.Org.CreatedAt,
		UpdatedAt:      f.Org.CreatedAt,
	}
	require.NoError(t, s.ClassSessions().Create(context.Background(), cs))
	return cs
}

// AddBooking books a kid into sessionID and returns the booking with the
// raw token a scanner would read.
func (f Fixture) AddBooking(t testing.TB, s store.Store, sessionID, kidName string) (domain.Booking, string) {
	t.Helper()

	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	require.NoError(t, err)

	b := domain.Booking{
		ID:           idx.New().String(),
		SessionID:    sessionID,
		TokenHash:    cryptox.FingerprintToken(token),
		KidID:        idx.New().String(),
		KidName:      kidName,
		ParentName:   "Jordan Parent",
		CreditsCost:  f.Template.CreditsCost,
		Status:       domain.BookingConfirmed,
		CheckinState: domain.CheckinUnused,
		CreatedAt:    f.Org.CreatedAt,
	}
	require.NoError(t, s.Bookings().Create(context.Background(), b))
	return b, token
}

// AddInvitation stores an invitation for email and returns it with its raw
// token. A nil expiresAt never expires.
func (f Fixture) AddInvitation(t testing.TB, s store.Store, token, email string, role domain.Role, expiresAt *time.Time) domain.Invitation {
	t.Helper()

	inv := domain.Invitation{
		ID:             idx.New().String(),
		OrganizationID: f.Org.ID,
		TokenHash:      cryptox.FingerprintToken(token),
		ContactEmail:   email,
		Role:           role,
		ExpiresAt:      expiresAt,
		CreatedAt:      f.Org.CreatedAt,
		UpdatedAt:      f.Org.CreatedAt,
	}
	require.NoError(t, s.Invitations().Create(context.Background(), inv))
	return inv
}
