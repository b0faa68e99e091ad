package service

import (
	"context"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
)

type AttendanceService struct {
	Store store.Store
}

// AttendanceQuery filters the report. Dates are organization local and
// inclusive.
type AttendanceQuery struct {
	DateFrom   string
	DateTo     string
	LocationID string
	TemplateID string
}

// ListCheckins returns the organization's checked-in bookings. Kid names
// are masked.
func (s *AttendanceService) ListCheckins(ctx context.Context, p domain.Principal, q AttendanceQuery) ([]domain.CheckinRecord, error) {
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	from, to, err := dayRange(q.DateFrom, q.DateTo, org.Location())
	if err != nil {
		return nil, err
	}

	records, err := s.Store.Bookings().ListCheckins(ctx, org.ID, domain.AttendanceFilter{
		From:       from,
		To:         to,
		LocationID: q.LocationID,
		TemplateID: q.TemplateID,
	})
	if err != nil {
		return nil, transient(err)
	}
	for i := range records {
		records[i].KidName = domain.MaskName(records[i].KidName)
	}
	return records, nil
}
