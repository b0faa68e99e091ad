package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

type FinanceService struct {
	Store store.Store
	Clock Clock
}

type DisputeRequest struct {
	BookingID string
	Reason    string
	Notes     string
}

// Earnings reports one line per session of period (YYYY-MM, organization
// local) that had check-ins. An empty period means the current month.
func (s *FinanceService) Earnings(ctx context.Context, p domain.Principal, period string) (domain.EarningsReport, error) {
	if err := requireManager(p); err != nil {
		return domain.EarningsReport{}, err
	}
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return domain.EarningsReport{}, err
	}
	loc := org.Location()
	if period == "" {
		period = s.Clock.now().In(loc).Format("2006-01")
	}

	_, from, to, err := monthRange(period, loc)
	if err != nil {
		return domain.EarningsReport{}, err
	}
	records, err := s.Store.Bookings().ListCheckins(ctx, org.ID, domain.AttendanceFilter{From: from, To: to})
	if err != nil {
		return domain.EarningsReport{}, transient(err)
	}

	report := domain.EarningsReport{Period: period, Lines: []domain.EarningsLine{}}
	index := map[string]int{}
	for _, r := range records {
		i, ok := index[r.SessionID]
		if !ok {
			i = len(report.Lines)
			index[r.SessionID] = i
			report.Lines = append(report.Lines, domain.EarningsLine{
				Date:       r.SessionStartAt.In(loc).Format(dateLayout),
				SessionID:  r.SessionID,
				ClassTitle: r.ClassTitle,
			})
		}
		line := &report.Lines[i]
		line.CheckinsCount++
		line.Credits += r.CreditsCost
		line.AmountCents += int64(r.CreditsCost) * org.CreditValueCents
		report.TotalCents += int64(r.CreditsCost) * org.CreditValueCents
	}
	return report, nil
}

func (s *FinanceService) Payouts(ctx context.Context, p domain.Principal) ([]domain.Payout, error) {
	if err := requireManager(p); err != nil {
		return nil, err
	}
	payouts, err := s.Store.Payouts().ListByOrganization(ctx, p.OrganizationID)
	if err != nil {
		return nil, transient(err)
	}
	return payouts, nil
}

func (s *FinanceService) Disputes(ctx context.Context, p domain.Principal) ([]domain.Dispute, error) {
	if err := requireManager(p); err != nil {
		return nil, err
	}
	disputes, err := s.Store.Disputes().ListByOrganization(ctx, p.OrganizationID)
	if err != nil {
		return nil, transient(err)
	}
	return disputes, nil
}

// OpenDispute files a pending dispute against one of the organization's
// bookings.
func (s *FinanceService) OpenDispute(ctx context.Context, p domain.Principal, req DisputeRequest) (domain.Dispute, error) {
	log := slogx.FromContext(ctx)
	if err := requireManager(p); err != nil {
		return domain.Dispute{}, err
	}

	reason, ok := domain.ParseDisputeReason(req.Reason)
	if !ok {
		return domain.Dispute{}, newError(ErrInvalidRequest, "Unknown dispute reason.")
	}
	notes := strings.TrimSpace(req.Notes)
	if reason == domain.DisputeOther && notes == "" {
		return domain.Dispute{}, newError(ErrInvalidRequest, "Please describe the issue.")
	}

	b, err := s.Store.Bookings().Get(ctx, req.BookingID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && b.OrganizationID != p.OrganizationID) {
		return domain.Dispute{}, newError(ErrNotFound, "Booking not found.")
	}
	if err != nil {
		return domain.Dispute{}, transient(err)
	}

	now := s.Clock.now()
	d := domain.Dispute{
		ID:             idx.NewAt(now).String(),
		OrganizationID: p.OrganizationID,
		BookingID:      b.ID,
		Reason:         reason,
		Notes:          notes,
		Status:         domain.DisputePending,
		CreatedBy:      p.AccountID,
		CreatedAt:      now,
	}
	if err := s.Store.Disputes().Create(ctx, d); err != nil {
		log.Error("failed to create dispute", slog.Any("error", err))
		return domain.Dispute{}, transient(err)
	}

	log.Info("dispute opened",
		slog.String("dispute_id", d.ID),
		slog.String("booking_id", d.BookingID),
		slog.String("reason", string(reason)),
	)
	return d, nil
}
