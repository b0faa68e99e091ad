package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/internal/partner/store/storetest"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/kidventure/partnerhub/pkg/jwtx"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://partners.test"

type authEnv struct {
	store  store.Store
	f      storetest.Fixture
	tokens *TokenService
	mfa    *MFAService
	km     *jwtx.KeyManager
}

// newAuthEnv runs on the wall clock because JWT and TOTP validation do.
func newAuthEnv(t *testing.T) authEnv {
	t.Helper()
	now := time.Now().UTC()

	s, f := seeded(t, now)
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, NumKeys: 2})
	require.NoError(t, err)

	return authEnv{
		store: s,
		f:     f,
		km:    km,
		tokens: &TokenService{
			KeyManager: km,
			Store:      s,
			Issuer:     testIssuer,
		},
		mfa: &MFAService{Store: s, Issuer: "KidVenture Pass"},
	}
}

func (e authEnv) account(t *testing.T, email, password string, role domain.Role) domain.Account {
	t.Helper()
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	a := domain.Account{
		ID:             idx.New().String(),
		OrganizationID: e.f.Org.ID,
		Email:          email,
		FirstName:      "Sam",
		LastName:       "Taylor",
		PasswordHash:   hash,
		Role:           role,
		Status:         domain.AccountActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, e.store.Accounts().Create(context.Background(), a))
	return a
}

func TestPasswordGrant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := newAuthEnv(t)
	staff := e.account(t, "staff@sprouts.example", "Passw0rd", domain.RoleStaff)

	t.Run("tokens carry the role once", func(t *testing.T) {
		pair, err := e.tokens.PasswordGrant(ctx, " STAFF@sprouts.example ", "Passw0rd")
		require.NoError(t, err)
		require.Equal(t, "Bearer", pair.TokenType)
		require.Equal(t, domain.RoleStaff, pair.Role)
		require.NotContains(t, pair.Scope, domain.ScopeSessionsWrite)

		claims, err := e.km.Verifier.Verify(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, staff.ID, claims.Subject)
		require.Equal(t, "staff", claims.Role)
		require.Equal(t, e.f.Org.ID, claims.OrgID)
		require.Equal(t, []string{jwtx.AMRPassword}, claims.AMR)
		require.True(t, claims.HasScope(domain.ScopeCheckinsWrite))
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, err := e.tokens.PasswordGrant(ctx, "staff@sprouts.example", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = e.tokens.PasswordGrant(ctx, "ghost@sprouts.example", "Passw0rd")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("removed accounts cannot sign in or refresh", func(t *testing.T) {
		leaver := e.account(t, "leaver@sprouts.example", "Passw0rd", domain.RoleStaff)
		pair, err := e.tokens.PasswordGrant(ctx, leaver.Email, "Passw0rd")
		require.NoError(t, err)

		require.NoError(t, e.store.Accounts().Remove(ctx, leaver.ID, e.f.Org.ID, time.Now()))

		_, err = e.tokens.PasswordGrant(ctx, leaver.Email, "Passw0rd")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = e.tokens.RefreshGrant(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})
}

func TestRefreshGrant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := newAuthEnv(t)
	manager := e.account(t, "boss@sprouts.example", "Passw0rd", domain.RoleManager)

	pair, err := e.tokens.PasswordGrant(ctx, manager.Email, "Passw0rd")
	require.NoError(t, err)
	first, err := e.km.Verifier.Verify(pair.AccessToken)
	require.NoError(t, err)

	rotated, err := e.tokens.RefreshGrant(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	claims, err := e.km.Verifier.Verify(rotated.AccessToken)
	require.NoError(t, err)
	require.Equal(t, first.SID, claims.SID)
	require.Equal(t, []string{jwtx.AMRPassword, jwtx.AMRRefresh}, claims.AMR)
	require.True(t, claims.HasScope(domain.ScopeFinanceRead))

	_, err = e.tokens.RefreshGrant(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh, "replayed refresh token")

	require.NoError(t, e.tokens.Revoke(ctx, rotated.RefreshToken))
	require.NoError(t, e.tokens.Revoke(ctx, rotated.RefreshToken))
	require.NoError(t, e.tokens.Revoke(ctx, "never-issued"))
	_, err = e.tokens.RefreshGrant(ctx, rotated.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestMFAFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := newAuthEnv(t)
	account := e.account(t, "mfa@sprouts.example", "Passw0rd", domain.RoleStaff)
	p := principal(account)

	enrollment, err := e.mfa.EnrollTOTP(ctx, p)
	require.NoError(t, err)
	require.Contains(t, enrollment.URL, "otpauth://totp/")

	require.ErrorIs(t, e.mfa.VerifyTOTP(ctx, p, "000000x"), ErrInvalidTOTPCode)

	code, err := totp.GenerateCode(enrollment.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, e.mfa.VerifyTOTP(ctx, p, code))

	_, err = e.mfa.EnrollTOTP(ctx, p)
	require.ErrorIs(t, err, ErrMFAAlreadyEnabled)

	t.Run("password grant asks for a code", func(t *testing.T) {
		_, err := e.tokens.PasswordGrant(ctx, account.Email, "Passw0rd")
		var mfaErr *MFARequiredError
		require.True(t, errors.As(err, &mfaErr))
		require.Equal(t, MFASessionTTL, mfaErr.ExpiresIn)

		_, err = e.tokens.MFAGrant(ctx, mfaErr.MFAToken, "000000x")
		require.ErrorIs(t, err, ErrInvalidGrant)

		code, err := totp.GenerateCode(enrollment.Secret, time.Now())
		require.NoError(t, err)
		pair, err := e.tokens.MFAGrant(ctx, mfaErr.MFAToken, code)
		require.NoError(t, err)

		claims, err := e.km.Verifier.Verify(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, []string{jwtx.AMRPassword, jwtx.AMROTP}, claims.AMR)

		_, err = e.tokens.MFAGrant(ctx, mfaErr.MFAToken, code)
		require.ErrorIs(t, err, ErrInvalidGrant, "session is consumed")
	})

	t.Run("attempts are limited", func(t *testing.T) {
		_, err := e.tokens.PasswordGrant(ctx, account.Email, "Passw0rd")
		var mfaErr *MFARequiredError
		require.True(t, errors.As(err, &mfaErr))

		for range MaxMFAAttempts {
			_, err = e.tokens.MFAGrant(ctx, mfaErr.MFAToken, "bad")
			require.ErrorIs(t, err, ErrInvalidGrant)
		}
		code, err := totp.GenerateCode(enrollment.Secret, time.Now())
		require.NoError(t, err)
		_, err = e.tokens.MFAGrant(ctx, mfaErr.MFAToken, code)
		require.ErrorIs(t, err, ErrTooManyAttempts)
	})

	t.Run("disable needs a valid code", func(t *testing.T) {
		require.ErrorIs(t, e.mfa.DisableTOTP(ctx, p, "bad"), ErrInvalidTOTPCode)

		code, err := totp.GenerateCode(enrollment.Secret, time.Now())
		require.NoError(t, err)
		require.NoError(t, e.mfa.DisableTOTP(ctx, p, code))
		require.ErrorIs(t, e.mfa.DisableTOTP(ctx, p, code), ErrMFANotEnabled)

		_, err = e.tokens.PasswordGrant(ctx, account.Email, "Passw0rd")
		require.NoError(t, err)
	})
}

func TestReinviteRemovedStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := newAuthEnv(t)
	org := &OrganizationService{Store: e.store, Invitations: &InvitationService{Store: e.store}}
	invites := org.Invitations
	leaver := e.account(t, "leaver@sprouts.example", "Passw0rd", domain.RoleStaff)

	require.NoError(t, org.RemoveStaff(ctx, principal(e.f.Manager), leaver.ID))

	_, token, err := invites.Mint(ctx, e.store, e.f.Org.ID, leaver.Email, domain.RoleStaff, &e.f.Manager.ID)
	require.NoError(t, err)

	_, err = invites.Verify(ctx, token)
	require.NoError(t, err)

	back, err := invites.Claim(ctx, ClaimRequest{
		Token:                token,
		FirstName:            "Sam",
		LastName:             "Again",
		Password:             "N3wPassword",
		PasswordConfirmation: "N3wPassword",
	})
	require.NoError(t, err)
	require.NotEqual(t, leaver.ID, back.ID)
	require.Equal(t, domain.AccountActive, back.Status)

	pair, err := e.tokens.PasswordGrant(ctx, leaver.Email, "N3wPassword")
	require.NoError(t, err)
	claims, err := e.km.Verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, back.ID, claims.Subject)

	_, err = e.tokens.PasswordGrant(ctx, leaver.Email, "Passw0rd")
	require.ErrorIs(t, err, ErrInvalidCredentials, "old password belongs to the removed account")

	_, _, err = invites.Mint(ctx, e.store, e.f.Org.ID, leaver.Email, domain.RoleStaff, nil)
	require.ErrorIs(t, err, ErrInvalidRequest, "active again")
}
