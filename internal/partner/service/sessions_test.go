package service

import (
	"context"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestSessionCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	svc := &SessionService{Store: s, Clock: fixedClock(testNow)}
	p := principal(f.Manager)

	req := CreateSessionRequest{
		TemplateID:    f.Template.ID,
		LocationID:    f.Location.ID,
		Date:          "2026-03-06",
		StartTime:     "09:30",
		EndTime:       "10:30",
		CapacityTotal: 10,
		CapacityKVP:   3,
	}

	t.Run("weekly sessions keep local time across daylight saving", func(t *testing.T) {
		weekly := req
		weekly.Recurrence = &domain.Recurrence{Type: domain.RecurrenceWeekly, EndDate: "2026-03-13"}

		created, err := svc.Create(ctx, p, weekly)
		require.NoError(t, err)
		require.Len(t, created, 2)

		// New York is UTC-5 before March 8 and UTC-4 after.
		require.Equal(t, time.Date(2026, 3, 6, 14, 30, 0, 0, time.UTC), created[0].StartAt)
		require.Equal(t, time.Date(2026, 3, 6, 15, 30, 0, 0, time.UTC), created[0].EndAt)
		require.Equal(t, time.Date(2026, 3, 13, 13, 30, 0, 0, time.UTC), created[1].StartAt)
		for _, cs := range created {
			require.Equal(t, domain.SessionOpen, cs.Status)
			require.Equal(t, f.Org.ID, cs.OrganizationID)
		}
	})

	t.Run("validation", func(t *testing.T) {
		for name, mutate := range map[string]func(r *CreateSessionRequest){
			"end before start": func(r *CreateSessionRequest) { r.EndTime = "09:00" },
			"bad time":         func(r *CreateSessionRequest) { r.StartTime = "9am" },
			"bad date":         func(r *CreateSessionRequest) { r.Date = "03/06/2026" },
			"no capacity":      func(r *CreateSessionRequest) { r.CapacityTotal = 0 },
			"kvp over total":   func(r *CreateSessionRequest) { r.CapacityKVP = 11 },
			"unknown template": func(r *CreateSessionRequest) { r.TemplateID = "missing" },
			"unknown location": func(r *CreateSessionRequest) { r.LocationID = "missing" },
		} {
			bad := req
			mutate(&bad)
			_, err := svc.Create(ctx, p, bad)
			require.ErrorIs(t, err, ErrInvalidRequest, name)
		}
	})

	t.Run("another organization's template", func(t *testing.T) {
		other := storetest.Seed(t, s, testNow)
		bad := req
		bad.TemplateID = other.Template.ID
		_, err := svc.Create(ctx, p, bad)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("staff cannot create", func(t *testing.T) {
		staff := storetest.AddAccount(t, s, f.Org.ID, "staff@sprouts.example", domain.RoleStaff, testNow)
		_, err := svc.Create(ctx, principal(staff), req)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("an oversized recurrence creates nothing", func(t *testing.T) {
		before, err := svc.List(ctx, p, SessionQuery{})
		require.NoError(t, err)

		bad := req
		bad.Recurrence = &domain.Recurrence{Type: domain.RecurrenceDaily, EndDate: "2028-01-01"}
		_, err = svc.Create(ctx, p, bad)
		require.ErrorIs(t, err, ErrInvalidRequest)

		after, err := svc.List(ctx, p, SessionQuery{})
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})
}

func TestSessionListAndCalendar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	svc := &SessionService{Store: s, Clock: fixedClock(testNow)}
	p := principal(f.Manager)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Late evening local time is already the next day in UTC.
	late := f.AddSession(t, s, time.Date(2026, 3, 4, 22, 0, 0, 0, ny))
	morning := f.AddSession(t, s, time.Date(2026, 3, 6, 9, 0, 0, 0, ny))
	f.AddSession(t, s, time.Date(2026, 3, 20, 9, 0, 0, 0, ny))
	f.AddBooking(t, s, morning.ID, "Emma Smith")

	t.Run("list by local dates", func(t *testing.T) {
		got, err := svc.List(ctx, p, SessionQuery{From: "2026-03-04", To: "2026-03-04"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, late.ID, got[0].ID)

		got, err = svc.List(ctx, p, SessionQuery{From: "2026-03-01", To: "2026-03-07"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, morning.ID, got[1].ID)
		require.Equal(t, 1, got[1].Booked)
		require.Equal(t, 3, got[1].KVPSpotsLeft())

		_, err = svc.List(ctx, p, SessionQuery{Status: "paused"})
		require.ErrorIs(t, err, ErrInvalidRequest)

		_, err = svc.List(ctx, p, SessionQuery{From: "2026-03-05", To: "2026-03-04"})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("week view", func(t *testing.T) {
		days, err := svc.Calendar(ctx, p, "week", "2026-03-04")
		require.NoError(t, err)
		require.Len(t, days, 7)
		require.Equal(t, "2026-03-01", days[0].Date)
		require.Equal(t, "2026-03-07", days[6].Date)
		require.Len(t, days[3].Sessions, 1)
		require.Equal(t, late.ID, days[3].Sessions[0].ID)
		require.Len(t, days[5].Sessions, 1)
		require.Empty(t, days[4].Sessions)
	})

	t.Run("month view", func(t *testing.T) {
		days, err := svc.Calendar(ctx, p, "month", "2026-03-18")
		require.NoError(t, err)
		require.Len(t, days, 31)

		var total int
		for _, d := range days {
			total += len(d.Sessions)
		}
		require.Equal(t, 3, total)
	})

	t.Run("default view is this week", func(t *testing.T) {
		days, err := svc.Calendar(ctx, p, "", "")
		require.NoError(t, err)
		require.Equal(t, "2026-03-01", days[0].Date)
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := svc.Calendar(ctx, p, "year", "")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	svc := &SessionService{Store: s, Clock: fixedClock(testNow)}
	p := principal(f.Manager)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cs := f.AddSession(t, s, time.Date(2026, 3, 10, 9, 0, 0, 0, ny))

	t.Run("update keeps the local date", func(t *testing.T) {
		start, total := "09:15", 20
		v, err := svc.Update(ctx, p, cs.ID, UpdateSessionRequest{StartTime: &start, CapacityTotal: &total})
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, 3, 10, 9, 15, 0, 0, ny).UTC(), v.StartAt)
		require.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, ny).UTC(), v.EndAt)
		require.Equal(t, 20, v.CapacityTotal)

		late := "12:00"
		_, err = svc.Update(ctx, p, cs.ID, UpdateSessionRequest{StartTime: &late})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("close is conditional", func(t *testing.T) {
		v, err := svc.Close(ctx, p, cs.ID)
		require.NoError(t, err)
		require.Equal(t, domain.SessionClosed, v.Status)

		_, err = svc.Close(ctx, p, cs.ID)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("cancel a closed session once", func(t *testing.T) {
		v, err := svc.Cancel(ctx, p, cs.ID)
		require.NoError(t, err)
		require.Equal(t, domain.SessionCanceled, v.Status)

		_, err = svc.Cancel(ctx, p, cs.ID)
		require.ErrorIs(t, err, ErrInvalidRequest)

		open := "open"
		_, err = svc.Update(ctx, p, cs.ID, UpdateSessionRequest{Status: &open})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("other organizations see nothing", func(t *testing.T) {
		other := storetest.Seed(t, s, testNow)
		_, err := svc.Get(ctx, principal(other.Manager), cs.ID)
		require.ErrorIs(t, err, ErrNotFound)
		_, err = svc.Close(ctx, principal(other.Manager), cs.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
