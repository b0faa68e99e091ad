package http

import (
	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

func toClassSession(v domain.SessionView) partnersdk.ClassSession {
	return partnersdk.ClassSession{
		ID:            v.ID,
		TemplateID:    v.TemplateID,
		ClassTitle:    v.ClassTitle,
		LocationID:    v.LocationID,
		LocationName:  v.LocationName,
		StartAt:       v.StartAt,
		EndAt:         v.EndAt,
		CapacityTotal: v.CapacityTotal,
		CapacityKVP:   v.CapacityKVP,
		Booked:        v.Booked,
		KVPSpotsLeft:  v.KVPSpotsLeft(),
		Status:        string(v.Status),
	}
}

func toClassSessions(views []domain.SessionView) []partnersdk.ClassSession {
	out := make([]partnersdk.ClassSession, 0, len(views))
	for _, v := range views {
		out = append(out, toClassSession(v))
	}
	return out
}

func toTemplate(t domain.ClassTemplate) partnersdk.ClassTemplate {
	return partnersdk.ClassTemplate{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		DurationMinutes: t.DurationMinutes,
		AgeMin:          t.AgeMin,
		AgeMax:          t.AgeMax,
		CreditsCost:     t.CreditsCost,
	}
}

func toTemplates(ts []domain.ClassTemplate) []partnersdk.ClassTemplate {
	out := make([]partnersdk.ClassTemplate, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTemplate(t))
	}
	return out
}

func toLocations(ls []domain.Location) []partnersdk.Location {
	out := make([]partnersdk.Location, 0, len(ls))
	for _, l := range ls {
		out = append(out, partnersdk.Location{ID: l.ID, Name: l.Name, Address: l.Address, Active: l.Active})
	}
	return out
}

func toStaffMember(m domain.StaffMember) partnersdk.StaffMember {
	return partnersdk.StaffMember{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      partnersdk.Role(m.Role),
		Status:    string(m.Status),
		InvitedAt: m.InvitedAt,
		JoinedAt:  m.JoinedAt,
	}
}

func toStaff(ms []domain.StaffMember) []partnersdk.StaffMember {
	out := make([]partnersdk.StaffMember, 0, len(ms))
	for _, m := range ms {
		out = append(out, toStaffMember(m))
	}
	return out
}

func toOrganization(p domain.OrganizationProfile) partnersdk.OrganizationResponse {
	return partnersdk.OrganizationResponse{
		ID:                  p.Organization.ID,
		DisplayName:         p.Organization.DisplayName,
		LegalName:           p.Organization.LegalName,
		Timezone:            p.Organization.Timezone,
		StripeConnectStatus: string(p.Organization.StripeConnectStatus),
		StripeConnectURL:    p.Organization.StripeConnectURL,
		Locations:           toLocations(p.Locations),
		Staff:               toStaff(p.Staff),
	}
}

func toPayout(p domain.Payout) partnersdk.Payout {
	return partnersdk.Payout{
		ID:          p.ID,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		AmountUSD:   domain.CentsToUSD(p.AmountCents),
		Status:      string(p.Status),
		PaidAt:      p.PaidAt,
	}
}

func toDispute(d domain.Dispute) partnersdk.Dispute {
	return partnersdk.Dispute{
		ID:         d.ID,
		BookingID:  d.BookingID,
		Reason:     string(d.Reason),
		Notes:      d.Notes,
		Status:     string(d.Status),
		CreatedAt:  d.CreatedAt,
		ResolvedAt: d.ResolvedAt,
	}
}

func toCheckinResponse(res domain.CheckinResult) partnersdk.CheckinResponse {
	out := partnersdk.CheckinResponse{
		Status:      string(res.Status),
		Message:     res.Message,
		CheckedInAt: res.CheckedInAt,
	}
	if b := res.Booking; b != nil {
		out.Booking = &partnersdk.CheckinBooking{
			ID:               b.ID,
			SessionID:        b.SessionID,
			ClassTitle:       b.ClassTitle,
			StartAt:          b.StartAt,
			KidNameMasked:    b.KidNameMasked,
			ParentNameMasked: b.ParentNameMasked,
		}
	}
	return out
}

func toCheckinRecord(c domain.CheckinRecord) partnersdk.CheckinRecord {
	return partnersdk.CheckinRecord{
		BookingID:      c.BookingID,
		SessionID:      c.SessionID,
		ClassTitle:     c.ClassTitle,
		LocationName:   c.LocationName,
		SessionStartAt: c.SessionStartAt,
		CheckedInAt:    c.CheckedInAt,
		CreditsCost:    c.CreditsCost,
		KidNameMasked:  c.KidName,
	}
}

func toAnalytics(a domain.MonthlyAnalytics) partnersdk.AnalyticsResponse {
	out := partnersdk.AnalyticsResponse{
		Period: a.Period,
		Overview: partnersdk.AnalyticsOverview{
			TotalSessions:         a.Overview.TotalSessions,
			TotalCheckins:         a.Overview.TotalCheckins,
			UniqueKids:            a.Overview.UniqueKids,
			TotalCreditsUsed:      a.Overview.TotalCreditsUsed,
			EstimatedRevenueUSD:   domain.CentsToUSD(a.Overview.EstimatedRevenueCents),
			AvgCheckinsPerSession: a.Overview.AvgCheckinsPerSession,
			KVPUtilizationRate:    a.Overview.KVPUtilizationRate,
		},
		Comparison: partnersdk.AnalyticsComparison(a.Comparison),

		TopClasses:        make([]partnersdk.ClassPerformance, 0, len(a.TopClasses)),
		LocationBreakdown: make([]partnersdk.LocationPerformance, 0, len(a.LocationBreakdown)),
		WeeklyTrend:       make([]partnersdk.WeeklyTrend, 0, len(a.WeeklyTrend)),
		PeakTimes:         make([]partnersdk.PeakTime, 0, len(a.PeakTimes)),
	}
	for _, c := range a.TopClasses {
		out.TopClasses = append(out.TopClasses, partnersdk.ClassPerformance{
			TemplateID:    c.TemplateID,
			ClassTitle:    c.ClassTitle,
			TotalSessions: c.TotalSessions,
			TotalCheckins: c.TotalCheckins,
			AvgAttendance: c.AvgAttendance,
			RevenueUSD:    domain.CentsToUSD(c.RevenueCents),
		})
	}
	for _, l := range a.LocationBreakdown {
		out.LocationBreakdown = append(out.LocationBreakdown, partnersdk.LocationPerformance{
			LocationID:   l.LocationID,
			LocationName: l.LocationName,
			Sessions:     l.Sessions,
			Checkins:     l.Checkins,
			RevenueUSD:   domain.CentsToUSD(l.RevenueCents),
		})
	}
	for _, w := range a.WeeklyTrend {
		out.WeeklyTrend = append(out.WeeklyTrend, partnersdk.WeeklyTrend{
			WeekStart:  w.WeekStart,
			Sessions:   w.Sessions,
			Checkins:   w.Checkins,
			RevenueUSD: domain.CentsToUSD(w.RevenueCents),
		})
	}
	for _, p := range a.PeakTimes {
		out.PeakTimes = append(out.PeakTimes, partnersdk.PeakTime(p))
	}
	return out
}
