package storetest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Run exercises a driver against the store.Store contract. open must return
// an empty, migrated store.
func Run(t *testing.T, open func(t *testing.T) store.Store) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("organizations", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		got, err := s.Organizations().Get(ctx, f.Org.ID)
		require.NoError(t, err)
		require.Equal(t, f.Org, got)

		require.NoError(t, s.Organizations().UpdateDisplayName(ctx, f.Org.ID, "Sprouts", now.Add(time.Hour)))
		got, err = s.Organizations().Get(ctx, f.Org.ID)
		require.NoError(t, err)
		require.Equal(t, "Sprouts", got.DisplayName)
		require.Equal(t, now.Add(time.Hour), got.UpdatedAt)

		_, err = s.Organizations().Get(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Organizations().UpdateDisplayName(ctx, "missing", "x", now), store.ErrNotFound)

		locs, err := s.Locations().ListByOrganization(ctx, f.Org.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.Location{f.Location}, locs)
	})

	t.Run("accounts", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		got, err := s.Accounts().GetByEmail(ctx, strings.ToUpper(f.Manager.Email))
		require.NoError(t, err)
		require.Equal(t, f.Manager.ID, got.ID)
		require.Equal(t, domain.RoleManager, got.Role)
		require.False(t, got.MFAEnabled())

		dup := f.Manager
		dup.ID = idx.New().String()
		dup.Email = strings.ToUpper(f.Manager.Email)
		require.ErrorIs(t, s.Accounts().Create(ctx, dup), store.ErrAlreadyExists)

		staff := AddAccount(t, s, f.Org.ID, "staff@sprouts.example", domain.RoleStaff, now)
		require.NoError(t, s.Accounts().Remove(ctx, staff.ID, f.Org.ID, now))
		require.ErrorIs(t, s.Accounts().Remove(ctx, staff.ID, f.Org.ID, now), store.ErrConflict)

		all, err := s.Accounts().ListByOrganization(ctx, f.Org.ID)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, domain.AccountRemoved, all[1].Status)
	})

	t.Run("mfa secret lifecycle", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()
		accounts := s.Accounts()

		require.ErrorIs(t, accounts.EnableMFA(ctx, f.Manager.ID, now), store.ErrNotFound)
		require.NoError(t, accounts.SetMFASecret(ctx, f.Manager.ID, "SECRET", now))
		require.NoError(t, accounts.EnableMFA(ctx, f.Manager.ID, now))

		got, err := accounts.Get(ctx, f.Manager.ID)
		require.NoError(t, err)
		require.True(t, got.MFAEnabled())
		require.Equal(t, "SECRET", *got.MFASecret)

		require.NoError(t, accounts.DisableMFA(ctx, f.Manager.ID, now))
		got, err = accounts.Get(ctx, f.Manager.ID)
		require.NoError(t, err)
		require.False(t, got.MFAEnabled())
		require.Nil(t, got.MFASecret)
	})

	t.Run("invitation claim is conditional", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		inv := f.AddInvitation(t, s, "tok-1", "new@sprouts.example", domain.RoleStaff, nil)

		require.ErrorIs(t, s.Invitations().Claim(ctx, inv.ID, "wrong-hash", f.Manager.ID, now), store.ErrConflict)
		require.NoError(t, s.Invitations().Claim(ctx, inv.ID, inv.TokenHash, f.Manager.ID, now))
		require.ErrorIs(t, s.Invitations().Claim(ctx, inv.ID, inv.TokenHash, f.Manager.ID, now), store.ErrConflict)

		got, err := s.Invitations().GetByTokenHash(ctx, inv.TokenHash)
		require.NoError(t, err)
		require.True(t, got.Claimed())
		require.Equal(t, f.Manager.ID, *got.ClaimedByAccountID)
		require.Equal(t, now, *got.ClaimedAt)
	})

	t.Run("invitation expiry is exclusive", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		exp := now.Add(time.Hour)
		inv := f.AddInvitation(t, s, "tok-exp", "late@sprouts.example", domain.RoleStaff, &exp)

		pending, err := s.Invitations().ListPending(ctx, f.Org.ID, now)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		pending, err = s.Invitations().ListPending(ctx, f.Org.ID, exp)
		require.NoError(t, err)
		require.Empty(t, pending)

		require.ErrorIs(t, s.Invitations().Claim(ctx, inv.ID, inv.TokenHash, f.Manager.ID, exp), store.ErrConflict)
		require.NoError(t, s.Invitations().Claim(ctx, inv.ID, inv.TokenHash, f.Manager.ID, exp.Add(-time.Second)))
	})

	t.Run("claim and account insert commit together", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		inv := f.AddInvitation(t, s, "tok-tx", "joiner@sprouts.example", domain.RoleStaff, nil)
		accountID := idx.New().String()

		errBoom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.Invitations().Claim(ctx, inv.ID, inv.TokenHash, accountID, now))
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)

		got, err := s.Invitations().Get(ctx, inv.ID)
		require.NoError(t, err)
		require.False(t, got.Claimed())

		err = s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Invitations().Claim(ctx, inv.ID, inv.TokenHash, accountID, now); err != nil {
				return err
			}
			return tx.Accounts().Create(ctx, domain.Account{
				ID:             accountID,
				OrganizationID: f.Org.ID,
				Email:          inv.ContactEmail,
				FirstName:      "Joiner",
				LastName:       "Person",
				PasswordHash:   "hash",
				Role:           inv.Role,
				Status:         domain.AccountActive,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
		})
		require.NoError(t, err)

		got, err = s.Invitations().Get(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, accountID, *got.ClaimedByAccountID)
	})

	t.Run("concurrent claims have one winner", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		inv := f.AddInvitation(t, s, "tok-race", "race@sprouts.example", domain.RoleStaff, nil)

		const n = 8
		var (
			wg   sync.WaitGroup
			errs = make([]error, n)
		)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = s.WithTx(ctx, func(tx store.Tx) error {
					return tx.Invitations().Claim(ctx, inv.ID, inv.TokenHash, f.Manager.ID, now)
				})
			}()
		}
		wg.Wait()

		won := 0
		for _, err := range errs {
			if err == nil {
				won++
				continue
			}
			require.ErrorIs(t, err, store.ErrConflict)
		}
		require.Equal(t, 1, won)
	})

	t.Run("sessions", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		early := f.AddSession(t, s, now.Add(24*time.Hour))
		late := f.AddSession(t, s, now.Add(48*time.Hour))
		f.AddBooking(t, s, early.ID, "Emma Smith")
		f.AddBooking(t, s, early.ID, "Liam Brown")

		v, err := s.ClassSessions().Get(ctx, early.ID)
		require.NoError(t, err)
		require.Equal(t, 2, v.Booked)
		require.Equal(t, 2, v.KVPSpotsLeft())
		require.Equal(t, f.Template.Title, v.ClassTitle)
		require.Equal(t, f.Location.Name, v.LocationName)
		require.Equal(t, early.StartAt, v.StartAt)

		list, err := s.ClassSessions().List(ctx, f.Org.ID, domain.SessionFilter{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, early.ID, list[0].ID)
		require.Equal(t, late.ID, list[1].ID)

		list, err = s.ClassSessions().List(ctx, f.Org.ID, domain.SessionFilter{From: late.StartAt})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, late.ID, list[0].ID)

		list, err = s.ClassSessions().List(ctx, f.Org.ID, domain.SessionFilter{To: late.StartAt.Add(-time.Second)})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, early.ID, list[0].ID)

		from := []domain.SessionStatus{domain.SessionOpen, domain.SessionClosed}
		require.NoError(t, s.ClassSessions().SetStatus(ctx, late.ID, domain.SessionCanceled, from, now))
		require.ErrorIs(t, s.ClassSessions().SetStatus(ctx, late.ID, domain.SessionCanceled, from, now), store.ErrConflict)

		list, err = s.ClassSessions().List(ctx, f.Org.ID, domain.SessionFilter{Status: domain.SessionCanceled})
		require.NoError(t, err)
		require.Len(t, list, 1)

		early.CapacityKVP = 6
		early.UpdatedAt = now.Add(time.Minute)
		require.NoError(t, s.ClassSessions().Update(ctx, early))
		v, err = s.ClassSessions().Get(ctx, early.ID)
		require.NoError(t, err)
		require.Equal(t, 6, v.CapacityKVP)

		late.Status = domain.SessionOpen
		late.CapacityKVP = 9
		late.UpdatedAt = now.Add(time.Minute)
		require.ErrorIs(t, s.ClassSessions().Update(ctx, late), store.ErrConflict)
		v, err = s.ClassSessions().Get(ctx, late.ID)
		require.NoError(t, err)
		require.Equal(t, domain.SessionCanceled, v.Status)
		require.Equal(t, 4, v.CapacityKVP)
	})

	t.Run("row locks", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()
		cs := f.AddSession(t, s, now)

		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.Organizations().Lock(ctx, f.Org.ID))
			require.NoError(t, tx.ClassSessions().Lock(ctx, cs.ID))
			require.ErrorIs(t, tx.Organizations().Lock(ctx, "missing"), store.ErrNotFound)
			require.ErrorIs(t, tx.ClassSessions().Lock(ctx, "missing"), store.ErrNotFound)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("removed accounts free their email", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		gone := AddAccount(t, s, f.Org.ID, "again@sprouts.example", domain.RoleStaff, now)
		require.NoError(t, s.Accounts().Remove(ctx, gone.ID, f.Org.ID, now))

		back := AddAccount(t, s, f.Org.ID, "again@sprouts.example", domain.RoleManager, now.Add(time.Hour))
		got, err := s.Accounts().GetByEmail(ctx, "again@sprouts.example")
		require.NoError(t, err)
		require.Equal(t, back.ID, got.ID)
		require.True(t, got.Active())

		dup := back
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Accounts().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("check-in happens once", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		cs := f.AddSession(t, s, now)
		b, token := f.AddBooking(t, s, cs.ID, "Emma Smith")
		require.NotEmpty(t, token)

		bc, err := s.Bookings().GetByTokenHash(ctx, b.TokenHash)
		require.NoError(t, err)
		require.Equal(t, f.Org.ID, bc.OrganizationID)
		require.Equal(t, domain.SessionOpen, bc.SessionStatus)
		require.Equal(t, cs.StartAt, bc.StartAt)
		require.Equal(t, domain.CheckinUnused, bc.CheckinState)

		require.NoError(t, s.Bookings().MarkCheckedIn(ctx, b.ID, f.Manager.ID, now))
		require.ErrorIs(t, s.Bookings().MarkCheckedIn(ctx, b.ID, f.Manager.ID, now.Add(time.Minute)), store.ErrConflict)

		bc, err = s.Bookings().Get(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CheckinCheckedIn, bc.CheckinState)
		require.Equal(t, now, *bc.CheckedInAt)
		require.Equal(t, f.Manager.ID, *bc.CheckedInBy)

		recs, err := s.Bookings().ListCheckins(ctx, f.Org.ID, domain.AttendanceFilter{LocationID: f.Location.ID})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		require.Equal(t, b.ID, recs[0].BookingID)
		require.Equal(t, f.Template.CreditsCost, recs[0].CreditsCost)

		recs, err = s.Bookings().ListCheckins(ctx, f.Org.ID, domain.AttendanceFilter{TemplateID: "other"})
		require.NoError(t, err)
		require.Empty(t, recs)

		_, err = s.Bookings().GetByTokenHash(ctx, "unknown")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("finance", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		for _, period := range []string{"2025-01-01", "2025-02-01"} {
			require.NoError(t, s.Payouts().Create(ctx, domain.Payout{
				ID:             idx.New().String(),
				OrganizationID: f.Org.ID,
				PeriodStart:    period,
				PeriodEnd:      period[:8] + "28",
				AmountCents:    12_500,
				Status:         domain.PayoutPaid,
				PaidAt:         &now,
				CreatedAt:      now,
			}))
		}
		payouts, err := s.Payouts().ListByOrganization(ctx, f.Org.ID)
		require.NoError(t, err)
		require.Len(t, payouts, 2)
		require.Equal(t, "2025-02-01", payouts[0].PeriodStart)

		cs := f.AddSession(t, s, now)
		b, _ := f.AddBooking(t, s, cs.ID, "Emma Smith")
		require.NoError(t, s.Disputes().Create(ctx, domain.Dispute{
			ID:             idx.New().String(),
			OrganizationID: f.Org.ID,
			BookingID:      b.ID,
			Reason:         domain.DisputeTechnicalIssue,
			Notes:          "scanner offline",
			Status:         domain.DisputePending,
			CreatedBy:      f.Manager.ID,
			CreatedAt:      now,
		}))
		disputes, err := s.Disputes().ListByOrganization(ctx, f.Org.ID)
		require.NoError(t, err)
		require.Len(t, disputes, 1)
		require.Equal(t, domain.DisputeTechnicalIssue, disputes[0].Reason)
	})

	t.Run("refresh tokens", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		tok := domain.RefreshToken{
			ID:        idx.New().String(),
			AccountID: f.Manager.ID,
			TokenHash: "rt-hash",
			SessionID: idx.New().String(),
			AMR:       []string{"pwd", "otp"},
			ExpiresAt: now.Add(time.Hour),
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, s.RefreshTokens().Create(ctx, tok))

		got, err := s.RefreshTokens().GetByHash(ctx, "rt-hash")
		require.NoError(t, err)
		require.Equal(t, tok, got)

		require.NoError(t, s.RefreshTokens().Revoke(ctx, "rt-hash", now))
		require.ErrorIs(t, s.RefreshTokens().Revoke(ctx, "rt-hash", now), store.ErrConflict)

		got, err = s.RefreshTokens().GetByHash(ctx, "rt-hash")
		require.NoError(t, err)
		require.True(t, got.Revoked)

		n, err := s.RefreshTokens().DeleteExpired(ctx, now.Add(time.Hour))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})

	t.Run("mfa sessions", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		ms := domain.MFASession{
			ID:        idx.New().String(),
			AccountID: f.Manager.ID,
			SessionID: idx.New().String(),
			AMR:       []string{"pwd"},
			CreatedAt: now,
			ExpiresAt: now.Add(5 * time.Minute),
		}
		require.NoError(t, s.MFASessions().Create(ctx, ms))

		got, err := s.MFASessions().IncrementAttempts(ctx, ms.ID)
		require.NoError(t, err)
		require.Equal(t, 1, got.Attempts)

		_, err = s.MFASessions().Get(ctx, ms.ID, ms.ExpiresAt)
		require.ErrorIs(t, err, store.ErrNotFound)

		n, err := s.MFASessions().DeleteExpired(ctx, ms.ExpiresAt)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})

	t.Run("password reset is single use", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		pr := domain.PasswordReset{
			ID:        idx.New().String(),
			AccountID: f.Manager.ID,
			TokenHash: "reset-hash",
			ExpiresAt: now.Add(time.Hour),
			CreatedAt: now,
		}
		require.NoError(t, s.PasswordResets().Create(ctx, pr))
		require.ErrorIs(t, s.PasswordResets().Create(ctx, pr), store.ErrAlreadyExists)

		got, err := s.PasswordResets().GetByTokenHash(ctx, "reset-hash")
		require.NoError(t, err)
		require.Equal(t, pr, got)
		require.True(t, got.Usable(now))

		require.ErrorIs(t, s.PasswordResets().Consume(ctx, pr.ID, "other-hash", now), store.ErrConflict)
		require.ErrorIs(t, s.PasswordResets().Consume(ctx, pr.ID, pr.TokenHash, pr.ExpiresAt), store.ErrConflict)
		require.NoError(t, s.PasswordResets().Consume(ctx, pr.ID, pr.TokenHash, now))
		require.ErrorIs(t, s.PasswordResets().Consume(ctx, pr.ID, pr.TokenHash, now), store.ErrConflict)

		got, err = s.PasswordResets().GetByTokenHash(ctx, "reset-hash")
		require.NoError(t, err)
		require.Equal(t, now, *got.UsedAt)
		require.False(t, got.Usable(now))

		_, err = s.PasswordResets().GetByTokenHash(ctx, "unknown")
		require.ErrorIs(t, err, store.ErrNotFound)

		other := pr
		other.ID = idx.New().String()
		other.TokenHash = "other-hash"
		require.NoError(t, s.PasswordResets().Create(ctx, other))
		require.NoError(t, s.PasswordResets().ConsumeAllForAccount(ctx, f.Manager.ID, now))
		require.ErrorIs(t, s.PasswordResets().Consume(ctx, other.ID, other.TokenHash, now), store.ErrConflict)

		n, err := s.PasswordResets().DeleteExpired(ctx, pr.ExpiresAt)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
	})

	t.Run("set password", func(t *testing.T) {
		s := open(t)
		f := Seed(t, s, now)
		ctx := context.Background()

		require.NoError(t, s.Accounts().SetPassword(ctx, f.Manager.ID, "new-hash", now.Add(time.Hour)))
		got, err := s.Accounts().Get(ctx, f.Manager.ID)
		require.NoError(t, err)
		require.Equal(t, "new-hash", got.PasswordHash)
		require.Equal(t, now.Add(time.Hour), got.UpdatedAt)

		staff := AddAccount(t, s, f.Org.ID, "staff@sprouts.example", domain.RoleStaff, now)
		require.NoError(t, s.Accounts().Remove(ctx, staff.ID, f.Org.ID, now))
		require.ErrorIs(t, s.Accounts().SetPassword(ctx, staff.ID, "x", now), store.ErrConflict)
		require.ErrorIs(t, s.Accounts().SetPassword(ctx, "missing", "x", now), store.ErrConflict)
	})
}
