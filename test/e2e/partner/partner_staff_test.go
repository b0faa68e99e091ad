package partner_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

// TestStaffManagement drives the manager side of staff administration. The
// staff sign-in path is covered by the HTTP package tests, which can read
// the invitation email.
func TestStaffManagement(t *testing.T) {
	client := setupHub(t)
	_, manager := signInManager(t, client)
	ctx := t.Context()

	member, err := manager.InviteStaff(ctx, "desk@sprouts.example", partnersdk.RoleStaff)
	require.NoError(t, err)
	require.Equal(t, "pending", member.Status)

	staffList, err := manager.Staff(ctx)
	require.NoError(t, err)
	require.Len(t, staffList.Staff, 2)

	t.Run("manager can read finance", func(t *testing.T) {
		_, err := manager.Earnings(ctx, "")
		require.NoError(t, err)
		_, err = manager.Payouts(ctx)
		require.NoError(t, err)
	})

	t.Run("manager can rename the organization", func(t *testing.T) {
		org, err := manager.UpdateOrganization(ctx, "  Little Sprouts Dance  ")
		require.NoError(t, err)
		require.Equal(t, "Little Sprouts Dance", org.DisplayName)

		_, err = manager.UpdateOrganization(ctx, "   ")
		assertAPIError(t, err, http.StatusBadRequest, partnersdk.ErrorCodeInvalidRequest)
	})

	t.Run("manager cannot remove themselves", func(t *testing.T) {
		err := manager.RemoveStaff(ctx, manager.AccountID())
		assertAPIError(t, err, http.StatusBadRequest, partnersdk.ErrorCodeInvalidRequest)
	})

	t.Run("duplicate invite is rejected", func(t *testing.T) {
		_, err := manager.InviteStaff(ctx, "desk@sprouts.example", partnersdk.RoleStaff)
		assertAPIError(t, err, http.StatusBadRequest, partnersdk.ErrorCodeInvalidRequest)
	})
}

func TestSignOutRevokesRefreshToken(t *testing.T) {
	client := setupHub(t)
	_, manager := signInManager(t, client)
	ctx := t.Context()

	refresh := manager.RefreshToken()
	var events []partnersdk.AuthEvent
	manager.OnAuthStateChange(func(ev partnersdk.AuthEvent, _ *partnersdk.Session) {
		events = append(events, ev)
	})

	require.NoError(t, manager.SignOut(ctx))
	require.False(t, manager.SignedIn())
	require.Equal(t, []partnersdk.AuthEvent{partnersdk.EventSignedOut}, events)

	_, err := client.RefreshGrant(ctx, refresh)
	assertAPIError(t, err, http.StatusUnauthorized, partnersdk.ErrorCodeInvalidGrant)
}
