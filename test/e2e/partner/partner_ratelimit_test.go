package partner_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

// TestRateLimitTokenEndpoint checks the strict password grant limit of 5
// requests per minute for one IP and email.
func TestRateLimitTokenEndpoint(t *testing.T) {
	client := setupHubWithDefaultRateLimits(t)
	ctx := t.Context()

	for i := range 5 {
		_, err := client.PasswordGrant(ctx, "nobody@sprouts.example", "Wrong12345")
		assertAPIError(t, err, http.StatusUnauthorized, partnersdk.ErrorCodeInvalidGrant)
		require.NotContains(t, err.Error(), "429", "request %d should not be limited", i+1)
	}

	_, err := client.PasswordGrant(ctx, "nobody@sprouts.example", "Wrong12345")
	var apiErr *partnersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)

	// Another email from the same IP has its own bucket.
	_, err = client.PasswordGrant(ctx, "someone-else@sprouts.example", "Wrong12345")
	assertAPIError(t, err, http.StatusUnauthorized, partnersdk.ErrorCodeInvalidGrant)
}

// TestRateLimitInvitationVerify guards the public token lookup against
// enumeration.
func TestRateLimitInvitationVerify(t *testing.T) {
	client := setupHubWithDefaultRateLimits(t)
	ctx := t.Context()

	var last error
	for range 6 {
		_, last = client.VerifyInvitation(ctx, "guess")
	}
	var apiErr *partnersdk.APIError
	require.ErrorAs(t, last, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}
