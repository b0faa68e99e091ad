package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/internal/partner/store/storetest"
	"github.com/kidventure/partnerhub/pkg/cryptox"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "partner-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// fixedClock returns a Clock stuck at t.
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// movableClock is a Clock a test can advance.
type movableClock struct{ t time.Time }

func (c *movableClock) Clock() Clock { return func() time.Time { return c.t } }
func (c *movableClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func principal(a domain.Account) domain.Principal {
	return domain.Principal{
		AccountID:      a.ID,
		OrganizationID: a.OrganizationID,
		Role:           a.Role,
		Email:          a.Email,
		Scopes:         a.Role.Scopes(),
	}
}

// seeded opens a fresh store with the standard fixture.
func seeded(t *testing.T, now time.Time) (store.Store, storetest.Fixture) {
	t.Helper()
	s := storetest.OpenSQLite(t)
	return s, storetest.Seed(t, s, now)
}
