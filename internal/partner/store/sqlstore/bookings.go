package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

type bookingsRepo struct {
	c conn
}

const bookingContextSelect = `
	SELECT b.id, b.session_id, b.token_hash, b.kid_id, b.kid_name, b.parent_name,
	       b.credits_cost, b.status, b.checkin_state, b.checked_in_at, b.checked_in_by, b.created_at,
	       s.organization_id, s.status, s.start_at, s.end_at, t.title
	FROM bookings b
	JOIN class_sessions s ON s.id = b.session_id
	JOIN class_templates t ON t.id = s.template_id`

func (r *bookingsRepo) Create(ctx context.Context, b domain.Booking) error {
	return r.c.insert(ctx, `
		INSERT INTO bookings (
			id, session_id, token_hash, kid_id, kid_name, parent_name, credits_cost,
			status, checkin_state, checked_in_at, checked_in_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.SessionID, b.TokenHash, b.KidID, b.KidName, b.ParentName, b.CreditsCost,
		string(b.Status), string(b.CheckinState), mapOptionalTime(b.CheckedInAt),
		mapOptionalString(b.CheckedInBy), b.CreatedAt.UTC(),
	)
}

func (r *bookingsRepo) GetByTokenHash(ctx context.Context, hash string) (domain.BookingContext, error) {
	bc, err := scanBookingContext(r.c.queryRow(ctx, bookingContextSelect+` WHERE b.token_hash = ?`, hash))
	return bc, mapNotFound(err)
}

func (r *bookingsRepo) Get(ctx context.Context, id string) (domain.BookingContext, error) {
	bc, err := scanBookingContext(r.c.queryRow(ctx, bookingContextSelect+` WHERE b.id = ?`, id))
	return bc, mapNotFound(err)
}

// MarkCheckedIn only moves bookings that are still unused; a concurrent
// scan of the same token matches zero rows.
func (r *bookingsRepo) MarkCheckedIn(ctx context.Context, id, byAccountID string, at time.Time) error {
	return r.c.execOne(ctx, `
		UPDATE bookings
		SET checkin_state = 'checked_in', checked_in_at = ?, checked_in_by = ?
		WHERE id = ? AND checkin_state = 'unused'`,
		at.UTC(), byAccountID, id,
	)
}

func (r *bookingsRepo) ListCheckins(ctx context.Context, orgID string, f domain.AttendanceFilter) ([]domain.CheckinRecord, error) {
	var (
		where = []string{"s.organization_id = ?", "b.checkin_state = 'checked_in'"}
		args  = []any{orgID}
	)
	if !f.From.IsZero() {
		where = append(where, "s.start_at >= ?")
		args = append(args, f.From.UTC())
	}
	if !f.To.IsZero() {
		where = append(where, "s.start_at <= ?")
		args = append(args, f.To.UTC())
	}
	if f.LocationID != "" {
		where = append(where, "s.location_id = ?")
		args = append(args, f.LocationID)
	}
	if f.TemplateID != "" {
		where = append(where, "s.template_id = ?")
		args = append(args, f.TemplateID)
	}

	rows, err := r.c.query(ctx, `
		SELECT b.id, s.id, t.title, t.id, l.id, l.name, s.start_at, b.checked_in_at,
		       b.credits_cost, b.kid_id, b.kid_name
		FROM bookings b
		JOIN class_sessions s ON s.id = b.session_id
		JOIN class_templates t ON t.id = s.template_id
		JOIN locations l ON l.id = s.location_id
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY s.start_at DESC, b.checked_in_at, b.id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CheckinRecord
	for rows.Next() {
		var rec domain.CheckinRecord
		err := rows.Scan(
			&rec.BookingID, &rec.SessionID, &rec.ClassTitle, &rec.TemplateID, &rec.LocationID,
			&rec.LocationName, &rec.SessionStartAt, &rec.CheckedInAt, &rec.CreditsCost,
			&rec.KidID, &rec.KidName,
		)
		if err != nil {
			return nil, err
		}
		rec.SessionStartAt = rec.SessionStartAt.UTC()
		rec.CheckedInAt = rec.CheckedInAt.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanBookingContext(s scanner) (domain.BookingContext, error) {
	var (
		bc                           domain.BookingContext
		status, state, sessionStatus string
		checkedInAt                  sql.NullTime
		checkedInBy                  sql.NullString
	)
	err := s.Scan(
		&bc.ID, &bc.SessionID, &bc.TokenHash, &bc.KidID, &bc.KidName, &bc.ParentName,
		&bc.CreditsCost, &status, &state, &checkedInAt, &checkedInBy, &bc.CreatedAt,
		&bc.OrganizationID, &sessionStatus, &bc.StartAt, &bc.EndAt, &bc.ClassTitle,
	)
	if err != nil {
		return domain.BookingContext{}, err
	}

	bc.Status = domain.BookingStatus(status)
	bc.CheckinState = domain.CheckinState(state)
	bc.CheckedInAt = mapNullTimePtr(checkedInAt)
	bc.CheckedInBy = mapNullStringPtr(checkedInBy)
	bc.CreatedAt = bc.CreatedAt.UTC()
	bc.SessionStatus = domain.SessionStatus(sessionStatus)
	bc.StartAt = bc.StartAt.UTC()
	bc.EndAt = bc.EndAt.UTC()
	return bc, nil
}
