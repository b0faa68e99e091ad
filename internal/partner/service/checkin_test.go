package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestCheckinWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	start := testNow.Add(2 * time.Hour)
	session := f.AddSession(t, s, start)
	p := principal(f.Manager)

	cases := []struct {
		name   string
		at     time.Time
		status domain.CheckinStatus
		msg    string
	}{
		{"one second before opening", start.Add(-30*time.Minute - time.Second), domain.CheckinInvalid, msgCheckinTooEarly},
		{"opening instant", start.Add(-30 * time.Minute), domain.CheckinValid, msgCheckinValid},
		{"closing instant", start.Add(15 * time.Minute), domain.CheckinValid, msgCheckinValid},
		{"one second after closing", start.Add(15*time.Minute + time.Second), domain.CheckinInvalid, msgCheckinTooLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, token := f.AddBooking(t, s, session.ID, "Emma Smith")
			svc := &CheckinService{Store: s, Clock: fixedClock(c.at)}

			res, err := svc.CheckIn(ctx, p, token)
			require.NoError(t, err)
			require.Equal(t, c.status, res.Status)
			require.Equal(t, c.msg, res.Message)
			require.NotNil(t, res.Booking)
			require.Equal(t, "Emma S.", res.Booking.KidNameMasked)
			require.Equal(t, "Jordan P.", res.Booking.ParentNameMasked)

			if c.status == domain.CheckinInvalid {
				require.ErrorIs(t, res.Err(), ErrOutOfWindow)
			} else {
				require.NoError(t, res.Err())
				require.Equal(t, c.at, *res.CheckedInAt)
			}
		})
	}

	t.Run("custom window", func(t *testing.T) {
		_, token := f.AddBooking(t, s, session.ID, "Liam Brown")
		svc := &CheckinService{Store: s, Clock: fixedClock(start.Add(-20 * time.Minute)), Early: 10 * time.Minute}

		res, err := svc.CheckIn(ctx, p, token)
		require.NoError(t, err)
		require.ErrorIs(t, res.Err(), ErrOutOfWindow)
	})
}

func TestCheckinOutcomes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	start := testNow.Add(10 * time.Minute)
	session := f.AddSession(t, s, start)
	staff := storetest.AddAccount(t, s, f.Org.ID, "staff@sprouts.example", domain.RoleStaff, testNow)
	p := principal(staff)
	svc := &CheckinService{Store: s, Clock: fixedClock(testNow)}

	t.Run("unknown token reveals nothing", func(t *testing.T) {
		res, err := svc.CheckIn(ctx, p, "not-a-booking")
		require.NoError(t, err)
		require.Equal(t, domain.CheckinInvalid, res.Status)
		require.ErrorIs(t, res.Err(), ErrNotFound)
		require.Nil(t, res.Booking)
	})

	t.Run("tokens match exactly", func(t *testing.T) {
		b, token := f.AddBooking(t, s, session.ID, "Noah Park")

		res, err := svc.CheckIn(ctx, p, " "+token+"\n")
		require.NoError(t, err)
		require.Equal(t, domain.CheckinInvalid, res.Status)
		require.ErrorIs(t, res.Err(), ErrNotFound)

		stored, err := s.Bookings().Get(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CheckinUnused, stored.CheckinState)
	})

	t.Run("duplicate keeps the original time", func(t *testing.T) {
		b, token := f.AddBooking(t, s, session.ID, "Ava Lee")

		first, err := svc.CheckIn(ctx, p, token)
		require.NoError(t, err)
		require.Equal(t, domain.CheckinValid, first.Status)

		later := &CheckinService{Store: s, Clock: fixedClock(testNow.Add(5 * time.Minute))}
		second, err := later.CheckIn(ctx, p, token)
		require.NoError(t, err)
		require.Equal(t, domain.CheckinDuplicate, second.Status)
		require.ErrorIs(t, second.Err(), ErrDuplicate)
		require.Equal(t, testNow, *second.CheckedInAt)

		stored, err := s.Bookings().Get(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CheckinCheckedIn, stored.CheckinState)
		require.Equal(t, staff.ID, *stored.CheckedInBy)
	})

	t.Run("another organization's booking is unknown", func(t *testing.T) {
		other := storetest.Seed(t, s, testNow)
		otherSession := other.AddSession(t, s, start)
		_, token := other.AddBooking(t, s, otherSession.ID, "Noah King")

		res, err := svc.CheckIn(ctx, p, token)
		require.NoError(t, err)
		require.Equal(t, domain.CheckinInvalid, res.Status)
		require.ErrorIs(t, res.Err(), ErrNotFound)
		require.Nil(t, res.Booking)
	})

	t.Run("canceled session", func(t *testing.T) {
		canceled := f.AddSession(t, s, start)
		_, token := f.AddBooking(t, s, canceled.ID, "Mia Chen")
		require.NoError(t, s.ClassSessions().SetStatus(ctx, canceled.ID, domain.SessionCanceled, nil, testNow))

		res, err := svc.CheckIn(ctx, p, token)
		require.NoError(t, err)
		require.Equal(t, domain.CheckinInvalid, res.Status)
		require.ErrorIs(t, res.Err(), ErrCanceled)
		require.Equal(t, msgCheckinCanceled, res.Message)
	})
}

func TestCheckinConcurrentScans(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	session := f.AddSession(t, s, testNow)
	_, token := f.AddBooking(t, s, session.ID, "Zoe Park")
	svc := &CheckinService{Store: s, Clock: fixedClock(testNow)}
	p := principal(f.Manager)

	var wg sync.WaitGroup
	results := make([]domain.CheckinResult, 2)
	errs := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = svc.CheckIn(ctx, p, token)
		}()
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	statuses := []domain.CheckinStatus{results[0].Status, results[1].Status}
	require.ElementsMatch(t, []domain.CheckinStatus{domain.CheckinValid, domain.CheckinDuplicate}, statuses)
}
