package partner_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

func TestTOTPSignIn(t *testing.T) {
	client := setupHub(t)
	_, manager := signInManager(t, client)
	ctx := t.Context()

	enrollment, err := manager.EnrollTOTP(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Equal(t, managerEmail, enrollment.Account)

	require.Error(t, manager.VerifyTOTP(ctx, "000000"))

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, manager.VerifyTOTP(ctx, code))

	me, err := manager.Me(ctx)
	require.NoError(t, err)
	require.True(t, me.MFAEnabled)

	t.Run("password alone is not enough", func(t *testing.T) {
		session := client.NewSession()
		err := session.SignIn(ctx, managerEmail, managerPassword)

		var challenge *partnersdk.MFARequiredError
		require.True(t, errors.As(err, &challenge))
		require.False(t, session.SignedIn())

		err = session.CompleteMFA(ctx, challenge.MFAToken, "123456")
		assertAPIError(t, err, http.StatusUnauthorized, partnersdk.ErrorCodeInvalidGrant)

		code, err := totp.GenerateCode(enrollment.Secret, time.Now())
		require.NoError(t, err)
		require.NoError(t, session.CompleteMFA(ctx, challenge.MFAToken, code))
		require.True(t, session.SignedIn())
		require.Equal(t, partnersdk.RoleManager, session.Role())
	})
}
