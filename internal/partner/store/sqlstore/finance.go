package sqlstore

import (
	"context"
	"database/sql"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

type payoutsRepo struct {
	c conn
}

func (r *payoutsRepo) Create(ctx context.Context, p domain.Payout) error {
	return r.c.insert(ctx, `
		INSERT INTO payouts (
			id, organization_id, period_start, period_end, amount_cents, status, paid_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OrganizationID, p.PeriodStart, p.PeriodEnd, p.AmountCents,
		string(p.Status), mapOptionalTime(p.PaidAt), p.CreatedAt.UTC(),
	)
}

func (r *payoutsRepo) ListByOrganization(ctx context.Context, orgID string) ([]domain.Payout, error) {
	rows, err := r.c.query(ctx, `
		SELECT id, organization_id, period_start, period_end, amount_cents, status, paid_at, created_at
		FROM payouts WHERE organization_id = ?
		ORDER BY period_start DESC, id DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Payout
	for rows.Next() {
		var (
			p      domain.Payout
			status string
			paidAt sql.NullTime
		)
		err := rows.Scan(&p.ID, &p.OrganizationID, &p.PeriodStart, &p.PeriodEnd,
			&p.AmountCents, &status, &paidAt, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		p.Status = domain.PayoutStatus(status)
		p.PaidAt = mapNullTimePtr(paidAt)
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

type disputesRepo struct {
	c conn
}

func (r *disputesRepo) Create(ctx context.Context, d domain.Dispute) error {
	return r.c.insert(ctx, `
		INSERT INTO disputes (
			id, organization_id, booking_id, reason, notes, status, created_by, created_at, resolved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.OrganizationID, d.BookingID, string(d.Reason), d.Notes,
		string(d.Status), d.CreatedBy, d.CreatedAt.UTC(), mapOptionalTime(d.ResolvedAt),
	)
}

func (r *disputesRepo) ListByOrganization(ctx context.Context, orgID string) ([]domain.Dispute, error) {
	rows, err := r.c.query(ctx, `
		SELECT id, organization_id, booking_id, reason, notes, status, created_by, created_at, resolved_at
		FROM disputes WHERE organization_id = ?
		ORDER BY created_at DESC, id DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Dispute
	for rows.Next() {
		var (
			d              domain.Dispute
			reason, status string
			resolvedAt     sql.NullTime
		)
		err := rows.Scan(&d.ID, &d.OrganizationID, &d.BookingID, &reason, &d.Notes,
			&status, &d.CreatedBy, &d.CreatedAt, &resolvedAt)
		if err != nil {
			return nil, err
		}
		d.Reason = domain.DisputeReason(reason)
		d.Status = domain.DisputeStatus(status)
		d.ResolvedAt = mapNullTimePtr(resolvedAt)
		d.CreatedAt = d.CreatedAt.UTC()
		out = append(out, d)
	}
	return out, rows.Err()
}
