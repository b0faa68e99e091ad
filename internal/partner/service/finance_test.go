package service

import (
	"context"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/internal/partner/store/storetest"
	"github.com/stretchr/testify/require"
)

// reportData is a month of activity used by the finance, attendance and
// analytics tests. The template costs 4 credits at 250 cents each.
type reportData struct {
	store    store.Store
	fixture  storetest.Fixture
	ny       *time.Location
	tuesday  domain.ClassSession // 2026-03-03 09:00, two check-ins
	nextTue  domain.ClassSession // 2026-03-10 09:00, one check-in
	evening  domain.ClassSession // 2026-03-10 16:00, booked, no check-in
	february domain.ClassSession // 2026-02-24 09:00, one check-in
	booking  domain.Booking      // checked in to tuesday
}

func seedReport(t *testing.T) reportData {
	t.Helper()
	ctx := context.Background()

	s, f := seeded(t, testNow)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	d := reportData{store: s, fixture: f, ny: ny}
	d.tuesday = f.AddSession(t, s, time.Date(2026, 3, 3, 9, 0, 0, 0, ny))
	d.nextTue = f.AddSession(t, s, time.Date(2026, 3, 10, 9, 0, 0, 0, ny))
	d.evening = f.AddSession(t, s, time.Date(2026, 3, 10, 16, 0, 0, 0, ny))
	d.february = f.AddSession(t, s, time.Date(2026, 2, 24, 9, 0, 0, 0, ny))

	checkIn := func(cs domain.ClassSession, kid string) domain.Booking {
		b, _ := f.AddBooking(t, s, cs.ID, kid)
		require.NoError(t, s.Bookings().MarkCheckedIn(ctx, b.ID, f.Manager.ID, cs.StartAt.Add(-5*time.Minute)))
		return b
	}
	d.booking = checkIn(d.tuesday, "Emma Smith")
	checkIn(d.tuesday, "Liam Brown")
	checkIn(d.nextTue, "Ava Lee")
	checkIn(d.february, "Noah King")
	f.AddBooking(t, s, d.evening.ID, "Mia Chen")
	return d
}

func TestEarnings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := seedReport(t)
	svc := &FinanceService{Store: d.store, Clock: fixedClock(testNow)}
	p := principal(d.fixture.Manager)

	report, err := svc.Earnings(ctx, p, "2026-03")
	require.NoError(t, err)
	require.Equal(t, "2026-03", report.Period)
	require.Equal(t, int64(3000), report.TotalCents)
	require.Len(t, report.Lines, 2)

	require.Equal(t, d.nextTue.ID, report.Lines[0].SessionID)
	require.Equal(t, "2026-03-10", report.Lines[0].Date)
	require.Equal(t, 1, report.Lines[0].CheckinsCount)
	require.Equal(t, int64(1000), report.Lines[0].AmountCents)

	require.Equal(t, d.tuesday.ID, report.Lines[1].SessionID)
	require.Equal(t, 2, report.Lines[1].CheckinsCount)
	require.Equal(t, 8, report.Lines[1].Credits)
	require.Equal(t, int64(2000), report.Lines[1].AmountCents)

	current, err := svc.Earnings(ctx, p, "")
	require.NoError(t, err)
	require.Equal(t, report, current)

	empty, err := svc.Earnings(ctx, p, "2025-12")
	require.NoError(t, err)
	require.Empty(t, empty.Lines)
	require.Zero(t, empty.TotalCents)

	_, err = svc.Earnings(ctx, p, "March")
	require.ErrorIs(t, err, ErrInvalidRequest)

	staff := storetest.AddAccount(t, d.store, d.fixture.Org.ID, "staff@sprouts.example", domain.RoleStaff, testNow)
	_, err = svc.Earnings(ctx, principal(staff), "2026-03")
	require.ErrorIs(t, err, ErrForbidden)
}

func TestDisputes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := seedReport(t)
	svc := &FinanceService{Store: d.store, Clock: fixedClock(testNow)}
	p := principal(d.fixture.Manager)

	dispute, err := svc.OpenDispute(ctx, p, DisputeRequest{BookingID: d.booking.ID, Reason: "wrong_checkin_time"})
	require.NoError(t, err)
	require.Equal(t, domain.DisputePending, dispute.Status)
	require.Equal(t, d.fixture.Manager.ID, dispute.CreatedBy)

	_, err = svc.OpenDispute(ctx, p, DisputeRequest{BookingID: d.booking.ID, Reason: "other", Notes: "  "})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.OpenDispute(ctx, p, DisputeRequest{BookingID: d.booking.ID, Reason: "because"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	other := storetest.Seed(t, d.store, testNow)
	_, err = svc.OpenDispute(ctx, principal(other.Manager), DisputeRequest{BookingID: d.booking.ID, Reason: "technical_issue"})
	require.ErrorIs(t, err, ErrNotFound)

	list, err := svc.Disputes(ctx, p)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, dispute.ID, list[0].ID)
}

func TestAttendance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := seedReport(t)
	svc := &AttendanceService{Store: d.store}
	p := principal(d.fixture.Manager)

	records, err := svc.ListCheckins(ctx, p, AttendanceQuery{DateFrom: "2026-03-03", DateTo: "2026-03-03"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	names := []string{records[0].KidName, records[1].KidName}
	require.ElementsMatch(t, []string{"Emma S.", "Liam B."}, names)
	require.Equal(t, "Main Street", records[0].LocationName)

	all, err := svc.ListCheckins(ctx, p, AttendanceQuery{TemplateID: d.fixture.Template.ID})
	require.NoError(t, err)
	require.Len(t, all, 4)

	none, err := svc.ListCheckins(ctx, p, AttendanceQuery{LocationID: "elsewhere"})
	require.NoError(t, err)
	require.Empty(t, none)
}
