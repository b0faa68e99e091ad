package domain

type AnalyticsOverview struct {
	TotalSessions         int
	TotalCheckins         int
	UniqueKids            int
	TotalCreditsUsed      int
	EstimatedRevenueCents int64
	AvgCheckinsPerSession float64
	KVPUtilizationRate    float64 // percent of KVP capacity booked
}

// AnalyticsComparison holds percent changes against the previous month.
type AnalyticsComparison struct {
	SessionsChange float64
	CheckinsChange float64
	RevenueChange  float64
}

type ClassPerformance struct {
	TemplateID    string
	ClassTitle    string
	TotalSessions int
	TotalCheckins int
	AvgAttendance float64
	RevenueCents  int64
}

type LocationPerformance struct {
	LocationID   string
	LocationName string
	Sessions     int
	Checkins     int
	RevenueCents int64
}

type WeeklyTrend struct {
	WeekStart    string // Sunday, YYYY-MM-DD
	Sessions     int
	Checkins     int
	RevenueCents int64
}

type PeakTime struct {
	DayOfWeek   int // 0 is Sunday
	Hour        int
	AvgCheckins float64
}

type MonthlyAnalytics struct {
	Period            string // YYYY-MM
	Overview          AnalyticsOverview
	Comparison        AnalyticsComparison
	TopClasses        []ClassPerformance
	LocationBreakdown []LocationPerformance
	WeeklyTrend       []WeeklyTrend
	PeakTimes         []PeakTime
}

// PartnerSummary backs the dashboard home page.
type PartnerSummary struct {
	OrganizationID      string
	OrganizationName    string
	TodaySessionsCount  int
	MonthCheckinsCount  int
	EstimatedCents      int64
	PayoutStatus        PayoutStatus
	StripeConnectStatus StripeConnectStatus
}
