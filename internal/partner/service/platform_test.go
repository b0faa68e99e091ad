package service

import (
	"context"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store/storetest"
	"github.com/kidventure/partnerhub/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestPlatformAuthorize(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	disabled := &PlatformService{}
	require.ErrorIs(t, disabled.Authorize(ctx, ""), ErrPlatformDisabled)

	svc := &PlatformService{Token: "secret"}
	require.NoError(t, svc.Authorize(ctx, "secret"))
	require.ErrorIs(t, svc.Authorize(ctx, "secreT"), ErrPlatformUnauthorized)
	require.ErrorIs(t, svc.Authorize(ctx, ""), ErrPlatformUnauthorized)
}

func TestPlatformOnboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := storetest.OpenSQLite(t)
	invitations := &InvitationService{Store: s, Clock: fixedClock(testNow)}
	svc := &PlatformService{Store: s, Clock: fixedClock(testNow), Token: "secret", Invitations: invitations}

	req := OnboardRequest{
		DisplayName:      "Wiggle Room",
		LegalName:        "Wiggle Room Inc",
		Timezone:         "America/Chicago",
		CreditValueCents: 300,
		ManagerEmail:     "owner@wiggle.example",
		Locations:        []OnboardLocation{{Name: "Downtown", Address: "5 Elm St"}},
		Templates:        []OnboardTemplate{{Title: "Toddler Gym", DurationMinutes: 45, CreditsCost: 3}},
	}

	res, err := svc.Onboard(ctx, "secret", req)
	require.NoError(t, err)
	require.Equal(t, domain.StripeNotStarted, res.Organization.StripeConnectStatus)
	require.Len(t, res.Locations, 1)
	require.Len(t, res.Templates, 1)
	require.Nil(t, res.Invitation.CreatedBy)

	details, err := invitations.Verify(ctx, res.InvitationToken)
	require.NoError(t, err)
	require.Equal(t, "Wiggle Room", details.OrganizationName)
	require.Equal(t, domain.RoleManager, details.Role)
	require.Equal(t, "owner@wiggle.example", details.ContactEmail)

	t.Run("invalid manager email fails onboarding", func(t *testing.T) {
		bad := req
		bad.DisplayName = "Half Made"
		bad.ManagerEmail = "not an email"
		_, err := svc.Onboard(ctx, "secret", bad)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("validation", func(t *testing.T) {
		for name, mutate := range map[string]func(r *OnboardRequest){
			"no name":      func(r *OnboardRequest) { r.DisplayName = " " },
			"bad zone":     func(r *OnboardRequest) { r.Timezone = "Mars/Olympus" },
			"no zone":      func(r *OnboardRequest) { r.Timezone = "" },
			"free credits": func(r *OnboardRequest) { r.CreditValueCents = 0 },
			"bad template": func(r *OnboardRequest) { r.Templates = []OnboardTemplate{{Title: "x"}} },
		} {
			bad := req
			mutate(&bad)
			_, err := svc.Onboard(ctx, "secret", bad)
			require.ErrorIs(t, err, ErrInvalidRequest, name)
		}
	})

	_, err = svc.Onboard(ctx, "wrong", req)
	require.ErrorIs(t, err, ErrPlatformUnauthorized)
}

func TestPlatformCreateBooking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	svc := &PlatformService{Store: s, Clock: fixedClock(testNow), Token: "secret"}
	session := f.AddSession(t, s, testNow.Add(time.Hour))

	b, token, err := svc.CreateBooking(ctx, "secret", BookingRequest{
		SessionID:  session.ID,
		KidID:      "kid-1",
		KidName:    "Emma Smith",
		ParentName: "Jordan Smith",
	})
	require.NoError(t, err)
	require.Equal(t, f.Template.CreditsCost, b.CreditsCost)
	require.Equal(t, domain.CheckinUnused, b.CheckinState)

	checkins := &CheckinService{Store: s, Clock: fixedClock(testNow.Add(45 * time.Minute))}
	res, err := checkins.CheckIn(ctx, principal(f.Manager), token)
	require.NoError(t, err)
	require.Equal(t, domain.CheckinValid, res.Status)

	t.Run("KVP capacity is enforced", func(t *testing.T) {
		for i := 1; i < session.CapacityKVP; i++ {
			_, _, err := svc.CreateBooking(ctx, "secret", BookingRequest{SessionID: session.ID, KidID: "k", KidName: "Kid"})
			require.NoError(t, err)
		}
		_, _, err := svc.CreateBooking(ctx, "secret", BookingRequest{SessionID: session.ID, KidID: "k", KidName: "Kid"})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("past and unknown sessions", func(t *testing.T) {
		past := f.AddSession(t, s, testNow.Add(-time.Hour))
		_, _, err := svc.CreateBooking(ctx, "secret", BookingRequest{SessionID: past.ID, KidID: "k", KidName: "Kid"})
		require.ErrorIs(t, err, ErrInvalidRequest)

		_, _, err = svc.CreateBooking(ctx, "secret", BookingRequest{SessionID: "missing", KidID: "k", KidName: "Kid"})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHousekeeping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	for i, exp := range []time.Time{testNow.Add(-time.Minute), testNow, testNow.Add(time.Hour)} {
		require.NoError(t, s.RefreshTokens().Create(ctx, domain.RefreshToken{
			ID:        string(rune('a' + i)),
			AccountID: f.Manager.ID,
			TokenHash: string(rune('a'+i)) + "-hash",
			SessionID: "sid",
			ExpiresAt: exp,
			CreatedAt: testNow,
			UpdatedAt: testNow,
		}))
	}
	require.NoError(t, s.MFASessions().Create(ctx, domain.MFASession{
		ID:        "mfa-old",
		AccountID: f.Manager.ID,
		SessionID: "sid",
		CreatedAt: testNow.Add(-10 * time.Minute),
		ExpiresAt: testNow.Add(-5 * time.Minute),
	}))

	require.NoError(t, s.PasswordResets().Create(ctx, domain.PasswordReset{
		ID:        "reset-old",
		AccountID: f.Manager.ID,
		TokenHash: "reset-hash",
		ExpiresAt: testNow,
		CreatedAt: testNow.Add(-time.Hour),
	}))

	hk := NewHousekeepingService(s, slogx.Discard(), 0)
	hk.Clock = fixedClock(testNow)
	require.Equal(t, DefaultHousekeepingInterval, hk.Interval)

	refresh, mfa, resets := hk.Cleanup(ctx)
	require.Equal(t, int64(2), refresh)
	require.Equal(t, int64(1), mfa)
	require.Equal(t, int64(1), resets)

	_, err := s.RefreshTokens().GetByHash(ctx, "c-hash")
	require.NoError(t, err)

	hk.Start()
	hk.Stop()
}
