package service

import (
	"context"
	"net/url"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store/storetest"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

var resetLink = regexp.MustCompile(`reset-password\?token=([A-Za-z0-9_%-]+)`)

// resetToken pulls the raw token out of the last reset email.
func resetToken(t *testing.T, mailer *recordingSender) string {
	t.Helper()
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	require.NotEmpty(t, mailer.sent)

	m := resetLink.FindStringSubmatch(mailer.sent[len(mailer.sent)-1].HTML)
	require.Len(t, m, 2)
	token, err := url.QueryUnescape(m[1])
	require.NoError(t, err)
	return token
}

func TestPasswordForgot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	mailer := &recordingSender{}
	svc := &PasswordService{Store: s, Clock: fixedClock(testNow), Mailer: mailer, DashboardURL: "https://partners.example"}

	leaver := storetest.AddAccount(t, s, f.Org.ID, "leaver@sprouts.example", domain.RoleStaff, testNow)
	require.NoError(t, s.Accounts().Remove(ctx, leaver.ID, f.Org.ID, testNow))

	svc.Forgot(ctx, "ghost@sprouts.example")
	svc.Forgot(ctx, "not an email")
	svc.Forgot(ctx, leaver.Email)
	require.Empty(t, mailer.sent)

	svc.Forgot(ctx, " "+f.Manager.Email+" ")
	require.Len(t, mailer.sent, 1)
	require.Equal(t, []string{f.Manager.Email}, mailer.sent[0].To)

	token := resetToken(t, mailer)
	stored, err := s.PasswordResets().GetByTokenHash(ctx, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	require.Equal(t, f.Manager.ID, stored.AccountID)
	require.Equal(t, testNow.Add(DefaultPasswordResetTTL), stored.ExpiresAt)

	t.Run("failed delivery still answers nothing", func(t *testing.T) {
		broken := &PasswordService{Store: s, Clock: fixedClock(testNow), Mailer: &recordingSender{err: context.DeadlineExceeded}}
		broken.Forgot(ctx, f.Manager.Email)
	})
}

func TestPasswordReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	mailer := &recordingSender{}
	clock := &movableClock{t: testNow}
	svc := &PasswordService{Store: s, Clock: clock.Clock(), Mailer: mailer}

	require.NoError(t, s.RefreshTokens().Create(ctx, domain.RefreshToken{
		ID:        "rt-1",
		AccountID: f.Manager.ID,
		TokenHash: cryptox.FingerprintToken("refresh"),
		SessionID: "sid",
		ExpiresAt: testNow.Add(24 * time.Hour),
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}))

	svc.Forgot(ctx, f.Manager.Email)
	olderToken := resetToken(t, mailer)
	svc.Forgot(ctx, f.Manager.Email)
	token := resetToken(t, mailer)
	require.NotEqual(t, olderToken, token)

	req := ResetPasswordRequest{Token: token, Password: "N3wPassword", PasswordConfirmation: "N3wPassword"}

	t.Run("input is checked before the token", func(t *testing.T) {
		bad := req
		bad.Token = " "
		require.ErrorIs(t, svc.Reset(ctx, bad), ErrInvalidToken)

		bad = req
		bad.Password, bad.PasswordConfirmation = "weak", "weak"
		require.ErrorIs(t, svc.Reset(ctx, bad), ErrWeakPassword)

		bad = req
		bad.PasswordConfirmation = "N3wPasswordX"
		require.ErrorIs(t, svc.Reset(ctx, bad), ErrPasswordMismatch)

		bad = req
		bad.Token = "unknown"
		err := svc.Reset(ctx, bad)
		require.ErrorIs(t, err, ErrNotFound)
		require.Equal(t, msgResetInvalid, Message(err))

		bad = req
		bad.Token = " " + token
		require.ErrorIs(t, svc.Reset(ctx, bad), ErrNotFound)
	})

	t.Run("reset sets the password and signs out", func(t *testing.T) {
		require.NoError(t, svc.Reset(ctx, req))

		account, err := s.Accounts().Get(ctx, f.Manager.ID)
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("N3wPassword", account.PasswordHash))

		rt, err := s.RefreshTokens().GetByHash(ctx, cryptox.FingerprintToken("refresh"))
		require.NoError(t, err)
		require.True(t, rt.Revoked)
	})

	t.Run("links work once", func(t *testing.T) {
		err := svc.Reset(ctx, req)
		require.ErrorIs(t, err, ErrExpired)
		require.Equal(t, msgResetInvalid, Message(err))

		older := req
		older.Token = olderToken
		require.ErrorIs(t, svc.Reset(ctx, older), ErrExpired)
	})

	t.Run("expiry instant is expired", func(t *testing.T) {
		svc.Forgot(ctx, f.Manager.Email)
		fresh := req
		fresh.Token = resetToken(t, mailer)

		clock.Advance(DefaultPasswordResetTTL)
		require.ErrorIs(t, svc.Reset(ctx, fresh), ErrExpired)
	})
}

func TestPasswordResetRace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	mailer := &recordingSender{}
	svc := &PasswordService{Store: s, Clock: fixedClock(testNow), Mailer: mailer}
	svc.Forgot(ctx, f.Manager.Email)
	token := resetToken(t, mailer)

	const n = 5
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		won  int
		errs []error
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := svc.Reset(ctx, ResetPasswordRequest{Token: token, Password: "Passw0rdRace"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				won++
				return
			}
			errs = append(errs, err)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, won)
	for _, err := range errs {
		require.ErrorIs(t, err, ErrExpired)
	}
}
