package domain_test

import (
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/stretchr/testify/require"
)

func TestMaskName(t *testing.T) {
	cases := map[string]string{
		"Emma Smith":       "Emma S.",
		"  Emma   smith  ": "Emma S.",
		"Mary Jane Watson": "Mary W.",
		"Cher":             "Cher",
		"":                 "",
		"Zoë Ångström":     "Zoë Å.",
	}
	for in, want := range cases {
		require.Equal(t, want, domain.MaskName(in), in)
	}
}

func TestRoleScopes(t *testing.T) {
	staff := domain.RoleStaff.Scopes()
	manager := domain.RoleManager.Scopes()

	require.Contains(t, staff, domain.ScopeCheckinsWrite)
	require.NotContains(t, staff, domain.ScopeFinanceRead)
	require.Subset(t, manager, staff)
	require.Contains(t, manager, domain.ScopeStaffWrite)

	// Callers get a copy.
	staff[0] = "tampered"
	require.NotContains(t, domain.RoleStaff.Scopes(), "tampered")

	_, err := domain.ParseRole("partner_admin")
	require.Error(t, err)
	require.Empty(t, domain.Role("").Scopes())
}

func TestInvitationExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	exp := now.Add(time.Hour)
	acc := "acc_1"

	inv := domain.Invitation{ExpiresAt: &exp}
	require.False(t, inv.Expired(now))
	require.True(t, inv.Expired(exp))
	require.False(t, inv.Claimed())

	require.False(t, domain.Invitation{}.Expired(now.AddDate(10, 0, 0)))
	require.True(t, domain.Invitation{ClaimedByAccountID: &acc}.Claimed())
}

func TestKVPSpotsLeft(t *testing.T) {
	v := domain.SessionView{ClassSession: domain.ClassSession{CapacityKVP: 4}, Booked: 3}
	require.Equal(t, 1, v.KVPSpotsLeft())
	v.Booked = 6
	require.Equal(t, 0, v.KVPSpotsLeft())
}
