package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
)

const (
	maxTopClasses = 5
	maxPeakTimes  = 5
)

type AnalyticsService struct {
	Store store.Store
	Clock Clock
}

// Summary backs the dashboard home page: today's sessions, this month's
// check-ins and earnings, and the latest payout status.
func (s *AnalyticsService) Summary(ctx context.Context, p domain.Principal) (domain.PartnerSummary, error) {
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return domain.PartnerSummary{}, err
	}
	loc := org.Location()
	local := s.Clock.now().In(loc)

	today := local.Format(dateLayout)
	from, to, err := dayRange(today, today, loc)
	if err != nil {
		return domain.PartnerSummary{}, err
	}
	sessions, err := s.Store.ClassSessions().List(ctx, org.ID, domain.SessionFilter{From: from, To: to})
	if err != nil {
		return domain.PartnerSummary{}, transient(err)
	}

	m, err := s.month(ctx, org, local.Format("2006-01"))
	if err != nil {
		return domain.PartnerSummary{}, err
	}

	summary := domain.PartnerSummary{
		OrganizationID:      org.ID,
		OrganizationName:    org.DisplayName,
		TodaySessionsCount:  countScheduled(sessions),
		MonthCheckinsCount:  len(m.checkins),
		EstimatedCents:      m.revenue(),
		PayoutStatus:        domain.PayoutPending,
		StripeConnectStatus: org.StripeConnectStatus,
	}

	payouts, err := s.Store.Payouts().ListByOrganization(ctx, org.ID)
	if err != nil {
		return domain.PartnerSummary{}, transient(err)
	}
	if len(payouts) > 0 {
		summary.PayoutStatus = payouts[0].Status
	}
	return summary, nil
}

// Monthly computes the analytics report of period (YYYY-MM, organization
// local), compared against the previous month.
func (s *AnalyticsService) Monthly(ctx context.Context, p domain.Principal, period string) (domain.MonthlyAnalytics, error) {
	if err := requireManager(p); err != nil {
		return domain.MonthlyAnalytics{}, err
	}
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return domain.MonthlyAnalytics{}, err
	}
	if period == "" {
		period = s.Clock.now().In(org.Location()).Format("2006-01")
	}

	cur, err := s.month(ctx, org, period)
	if err != nil {
		return domain.MonthlyAnalytics{}, err
	}
	prev, err := s.month(ctx, org, cur.first.AddDate(0, -1, 0).Format("2006-01"))
	if err != nil {
		return domain.MonthlyAnalytics{}, err
	}

	overview := cur.overview()
	before := prev.overview()
	return domain.MonthlyAnalytics{
		Period:   period,
		Overview: overview,
		Comparison: domain.AnalyticsComparison{
			SessionsChange: percentChange(float64(before.TotalSessions), float64(overview.TotalSessions)),
			CheckinsChange: percentChange(float64(before.TotalCheckins), float64(overview.TotalCheckins)),
			RevenueChange:  percentChange(float64(before.EstimatedRevenueCents), float64(overview.EstimatedRevenueCents)),
		},
		TopClasses:        cur.topClasses(),
		LocationBreakdown: cur.locations(),
		WeeklyTrend:       cur.weeklyTrend(),
		PeakTimes:         cur.peakTimes(),
	}, nil
}

// monthData is one month of sessions and check-ins of an organization.
type monthData struct {
	org      domain.Organization
	loc      *time.Location
	first    time.Time // first day, local midnight
	sessions []domain.SessionView
	checkins []domain.CheckinRecord
}

func (s *AnalyticsService) month(ctx context.Context, org domain.Organization, period string) (monthData, error) {
	loc := org.Location()
	first, from, to, err := monthRange(period, loc)
	if err != nil {
		return monthData{}, err
	}

	sessions, err := s.Store.ClassSessions().List(ctx, org.ID, domain.SessionFilter{From: from, To: to})
	if err != nil {
		return monthData{}, transient(err)
	}
	checkins, err := s.Store.Bookings().ListCheckins(ctx, org.ID, domain.AttendanceFilter{From: from, To: to})
	if err != nil {
		return monthData{}, transient(err)
	}

	scheduled := sessions[:0:0]
	for _, sv := range sessions {
		if sv.Status != domain.SessionCanceled {
			scheduled = append(scheduled, sv)
		}
	}
	return monthData{org: org, loc: loc, first: first, sessions: scheduled, checkins: checkins}, nil
}

func (m monthData) cents(credits int) int64 { return int64(credits) * m.org.CreditValueCents }

func (m monthData) revenue() int64 {
	var total int64
	for _, c := range m.checkins {
		total += m.cents(c.CreditsCost)
	}
	return total
}

func (m monthData) overview() domain.AnalyticsOverview {
	o := domain.AnalyticsOverview{
		TotalSessions:         len(m.sessions),
		TotalCheckins:         len(m.checkins),
		EstimatedRevenueCents: m.revenue(),
	}

	kids := map[string]struct{}{}
	for _, c := range m.checkins {
		kids[c.KidID] = struct{}{}
		o.TotalCreditsUsed += c.CreditsCost
	}
	o.UniqueKids = len(kids)

	var booked, capacity int
	for _, sv := range m.sessions {
		booked += sv.Booked
		capacity += sv.CapacityKVP
	}
	if o.TotalSessions > 0 {
		o.AvgCheckinsPerSession = round1(float64(o.TotalCheckins) / float64(o.TotalSessions))
	}
	if capacity > 0 {
		o.KVPUtilizationRate = round1(float64(booked) / float64(capacity) * 100)
	}
	return o
}

func (m monthData) topClasses() []domain.ClassPerformance {
	byTemplate := map[string]*domain.ClassPerformance{}
	get := func(id, title string) *domain.ClassPerformance {
		cp, ok := byTemplate[id]
		if !ok {
			cp = &domain.ClassPerformance{TemplateID: id, ClassTitle: title}
			byTemplate[id] = cp
		}
		return cp
	}
	for _, sv := range m.sessions {
		get(sv.TemplateID, sv.ClassTitle).TotalSessions++
	}
	for _, c := range m.checkins {
		cp := get(c.TemplateID, c.ClassTitle)
		cp.TotalCheckins++
		cp.RevenueCents += m.cents(c.CreditsCost)
	}

	out := make([]domain.ClassPerformance, 0, len(byTemplate))
	for _, cp := range byTemplate {
		if cp.TotalSessions > 0 {
			cp.AvgAttendance = round1(float64(cp.TotalCheckins) / float64(cp.TotalSessions))
		}
		out = append(out, *cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalCheckins != out[j].TotalCheckins {
			return out[i].TotalCheckins > out[j].TotalCheckins
		}
		return out[i].ClassTitle < out[j].ClassTitle
	})
	return out[:min(len(out), maxTopClasses)]
}

func (m monthData) locations() []domain.LocationPerformance {
	byLocation := map[string]*domain.LocationPerformance{}
	get := func(id, name string) *domain.LocationPerformance {
		lp, ok := byLocation[id]
		if !ok {
			lp = &domain.LocationPerformance{LocationID: id, LocationName: name}
			byLocation[id] = lp
		}
		return lp
	}
	for _, sv := range m.sessions {
		get(sv.LocationID, sv.LocationName).Sessions++
	}
	for _, c := range m.checkins {
		lp := get(c.LocationID, c.LocationName)
		lp.Checkins++
		lp.RevenueCents += m.cents(c.CreditsCost)
	}

	out := make([]domain.LocationPerformance, 0, len(byLocation))
	for _, lp := range byLocation {
		out = append(out, *lp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Checkins != out[j].Checkins {
			return out[i].Checkins > out[j].Checkins
		}
		return out[i].LocationName < out[j].LocationName
	})
	return out
}

// weeklyTrend has one entry per Sunday-start week overlapping the month.
func (m monthData) weeklyTrend() []domain.WeeklyTrend {
	var out []domain.WeeklyTrend
	index := map[string]int{}
	last := m.first.AddDate(0, 1, -1)
	firstDay := civil(m.first)
	for w := firstDay.AddDate(0, 0, -int(firstDay.Weekday())); !w.After(civil(last)); w = w.AddDate(0, 0, 7) {
		key := w.Format(dateLayout)
		index[key] = len(out)
		out = append(out, domain.WeeklyTrend{WeekStart: key})
	}

	week := func(t time.Time) int {
		d := civil(t.In(m.loc))
		return index[d.AddDate(0, 0, -int(d.Weekday())).Format(dateLayout)]
	}
	for _, sv := range m.sessions {
		out[week(sv.StartAt)].Sessions++
	}
	for _, c := range m.checkins {
		i := week(c.SessionStartAt)
		out[i].Checkins++
		out[i].RevenueCents += m.cents(c.CreditsCost)
	}
	return out
}

// peakTimes ranks weekday and hour slots by average check-ins per session.
func (m monthData) peakTimes() []domain.PeakTime {
	type slot struct{ day, hour int }
	sessions := map[slot]int{}
	checkins := map[slot]int{}
	key := func(t time.Time) slot {
		l := t.In(m.loc)
		return slot{int(l.Weekday()), l.Hour()}
	}
	for _, sv := range m.sessions {
		sessions[key(sv.StartAt)]++
	}
	for _, c := range m.checkins {
		checkins[key(c.SessionStartAt)]++
	}

	out := make([]domain.PeakTime, 0, len(sessions))
	for k, n := range sessions {
		if checkins[k] == 0 {
			continue
		}
		out = append(out, domain.PeakTime{
			DayOfWeek:   k.day,
			Hour:        k.hour,
			AvgCheckins: round1(float64(checkins[k]) / float64(n)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgCheckins != out[j].AvgCheckins {
			return out[i].AvgCheckins > out[j].AvgCheckins
		}
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].Hour < out[j].Hour
	})
	return out[:min(len(out), maxPeakTimes)]
}

func countScheduled(sessions []domain.SessionView) int {
	n := 0
	for _, sv := range sessions {
		if sv.Status != domain.SessionCanceled {
			n++
		}
	}
	return n
}

// percentChange is 0 when there is nothing to compare against.
func percentChange(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return round1((after - before) / before * 100)
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
