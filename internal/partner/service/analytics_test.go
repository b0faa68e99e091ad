package service

import (
	"context"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/stretchr/testify/require"
)

func TestMonthlyAnalytics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := seedReport(t)
	svc := &AnalyticsService{Store: d.store, Clock: fixedClock(testNow)}

	a, err := svc.Monthly(ctx, principal(d.fixture.Manager), "2026-03")
	require.NoError(t, err)

	require.Equal(t, domain.AnalyticsOverview{
		TotalSessions:         3,
		TotalCheckins:         3,
		UniqueKids:            3,
		TotalCreditsUsed:      12,
		EstimatedRevenueCents: 3000,
		AvgCheckinsPerSession: 1,
		KVPUtilizationRate:    33.3,
	}, a.Overview)

	require.Equal(t, domain.AnalyticsComparison{
		SessionsChange: 200,
		CheckinsChange: 200,
		RevenueChange:  200,
	}, a.Comparison)

	require.Len(t, a.TopClasses, 1)
	require.Equal(t, "Tiny Painters", a.TopClasses[0].ClassTitle)
	require.Equal(t, 3, a.TopClasses[0].TotalCheckins)
	require.Equal(t, 1.0, a.TopClasses[0].AvgAttendance)

	require.Len(t, a.LocationBreakdown, 1)
	require.Equal(t, int64(3000), a.LocationBreakdown[0].RevenueCents)

	require.Len(t, a.WeeklyTrend, 5)
	require.Equal(t, domain.WeeklyTrend{WeekStart: "2026-03-01", Sessions: 1, Checkins: 2, RevenueCents: 2000}, a.WeeklyTrend[0])
	require.Equal(t, domain.WeeklyTrend{WeekStart: "2026-03-08", Sessions: 2, Checkins: 1, RevenueCents: 1000}, a.WeeklyTrend[1])
	require.Zero(t, a.WeeklyTrend[4].Sessions)

	require.Equal(t, []domain.PeakTime{{DayOfWeek: int(time.Tuesday), Hour: 9, AvgCheckins: 1.5}}, a.PeakTimes)
}

func TestMonthlyAnalyticsWithoutHistory(t *testing.T) {
	t.Parallel()

	d := seedReport(t)
	svc := &AnalyticsService{Store: d.store, Clock: fixedClock(testNow)}

	a, err := svc.Monthly(context.Background(), principal(d.fixture.Manager), "2026-02")
	require.NoError(t, err)
	require.Equal(t, 1, a.Overview.TotalSessions)
	require.Zero(t, a.Comparison.SessionsChange)
	require.Len(t, a.WeeklyTrend, 4)
}

func TestSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := seedReport(t)
	platform := &PlatformService{Store: d.store, Clock: fixedClock(testNow), Token: "platform"}
	for _, req := range []PayoutRequest{
		{PeriodStart: "2026-01-01", PeriodEnd: "2026-01-31", AmountCents: 500, Status: "held"},
		{PeriodStart: "2026-02-01", PeriodEnd: "2026-02-28", AmountCents: 1000, Status: "paid"},
	} {
		req.OrganizationID = d.fixture.Org.ID
		_, err := platform.RecordPayout(ctx, "platform", req)
		require.NoError(t, err)
	}

	tuesdayNoon := time.Date(2026, 3, 10, 12, 0, 0, 0, d.ny)
	svc := &AnalyticsService{Store: d.store, Clock: fixedClock(tuesdayNoon)}

	summary, err := svc.Summary(ctx, principal(d.fixture.Manager))
	require.NoError(t, err)
	require.Equal(t, domain.PartnerSummary{
		OrganizationID:      d.fixture.Org.ID,
		OrganizationName:    "Little Sprouts Studio",
		TodaySessionsCount:  2,
		MonthCheckinsCount:  3,
		EstimatedCents:      3000,
		PayoutStatus:        domain.PayoutPaid,
		StripeConnectStatus: domain.StripeConnected,
	}, summary)
}
