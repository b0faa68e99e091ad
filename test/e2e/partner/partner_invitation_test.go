package partner_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

func TestInvitationVerifyAndClaim(t *testing.T) {
	client := setupHub(t)
	org := onboardStudio(t, client)
	ctx := t.Context()

	details, err := client.VerifyInvitation(ctx, org.InvitationToken)
	require.NoError(t, err)
	require.Equal(t, managerEmail, details.ContactEmail)
	require.Equal(t, partnersdk.RoleManager, details.Role)
	require.NotNil(t, details.ExpiresAt)

	_, err = client.ClaimInvitation(ctx, partnersdk.ClaimInvitationRequest{
		Token:                org.InvitationToken,
		FirstName:            "Morgan",
		LastName:             "Lee",
		Password:             managerPassword,
		PasswordConfirmation: "Different2025",
	})
	assertAPIError(t, err, http.StatusBadRequest, partnersdk.ErrorCodePasswordMismatch)

	claimed, err := client.ClaimInvitation(ctx, partnersdk.ClaimInvitationRequest{
		InvitationID: details.InvitationID,
		Token:        org.InvitationToken,
		FirstName:    "Morgan",
		LastName:     "Lee",
		Password:     managerPassword,
	})
	require.NoError(t, err)
	require.Equal(t, managerEmail, claimed.Email)

	_, err = client.VerifyInvitation(ctx, org.InvitationToken)
	assertAPIError(t, err, http.StatusConflict, partnersdk.ErrorCodeAlreadyClaimed)
}

// TestConcurrentClaims races several claims of one invitation; exactly one
// account is created.
func TestConcurrentClaims(t *testing.T) {
	client := setupHub(t)
	org := onboardStudio(t, client)

	const racers = 5
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		losses  int
		unknown []error
	)
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.ClaimInvitation(t.Context(), partnersdk.ClaimInvitationRequest{
				Token:     org.InvitationToken,
				FirstName: "Morgan",
				LastName:  "Lee",
				Password:  managerPassword,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case partnersdk.IsCode(err, partnersdk.ErrorCodeClaimRaceLost),
				partnersdk.IsCode(err, partnersdk.ErrorCodeAlreadyClaimed):
				losses++
			default:
				unknown = append(unknown, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, unknown)
	require.Equal(t, 1, wins)
	require.Equal(t, racers-1, losses)
}
