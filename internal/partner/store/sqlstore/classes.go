package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

type classTemplatesRepo struct {
	c conn
}

const templateColumns = `id, organization_id, title, description, duration_minutes,
	age_min, age_max, credits_cost, created_at`

func (r *classTemplatesRepo) Create(ctx context.Context, t domain.ClassTemplate) error {
	return r.c.insert(ctx, `
		INSERT INTO class_templates (`+templateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OrganizationID, t.Title, t.Description, t.DurationMinutes,
		mapOptionalInt(t.AgeMin), mapOptionalInt(t.AgeMax), t.CreditsCost, t.CreatedAt.UTC(),
	)
}

func (r *classTemplatesRepo) Get(ctx context.Context, id string) (domain.ClassTemplate, error) {
	t, err := scanTemplate(r.c.queryRow(ctx,
		`SELECT `+templateColumns+` FROM class_templates WHERE id = ?`, id))
	return t, mapNotFound(err)
}

func (r *classTemplatesRepo) ListByOrganization(ctx context.Context, orgID string) ([]domain.ClassTemplate, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+templateColumns+` FROM class_templates
		WHERE organization_id = ? ORDER BY title, id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ClassTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTemplate(s scanner) (domain.ClassTemplate, error) {
	var (
		t              domain.ClassTemplate
		ageMin, ageMax sql.NullInt64
	)
	err := s.Scan(
		&t.ID, &t.OrganizationID, &t.Title, &t.Description, &t.DurationMinutes,
		&ageMin, &ageMax, &t.CreditsCost, &t.CreatedAt,
	)
	if err != nil {
		return domain.ClassTemplate{}, err
	}
	t.AgeMin = mapNullIntPtr(ageMin)
	t.AgeMax = mapNullIntPtr(ageMax)
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

type classSessionsRepo struct {
	c conn
}

const sessionViewSelect = `
	SELECT s.id, s.organization_id, s.template_id, s.location_id, s.start_at, s.end_at,
	       s.capacity_total, s.capacity_kvp, s.status, s.created_at, s.updated_at,
	       t.title, l.name,
	       (SELECT COUNT(*) FROM bookings b WHERE b.session_id = s.id AND b.status = 'confirmed')
	FROM class_sessions s
	JOIN class_templates t ON t.id = s.template_id
	JOIN locations l ON l.id = s.location_id`

func (r *classSessionsRepo) Create(ctx context.Context, s domain.ClassSession) error {
	return r.c.insert(ctx, `
		INSERT INTO class_sessions (
			id, organization_id, template_id, location_id, start_at, end_at,
			capacity_total, capacity_kvp, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.OrganizationID, s.TemplateID, s.LocationID, s.StartAt.UTC(), s.EndAt.UTC(),
		s.CapacityTotal, s.CapacityKVP, string(s.Status), s.CreatedAt.UTC(), s.UpdatedAt.UTC(),
	)
}

func (r *classSessionsRepo) Get(ctx context.Context, id string) (domain.SessionView, error) {
	v, err := scanSessionView(r.c.queryRow(ctx, sessionViewSelect+` WHERE s.id = ?`, id))
	return v, mapNotFound(err)
}

func (r *classSessionsRepo) List(ctx context.Context, orgID string, f domain.SessionFilter) ([]domain.SessionView, error) {
	var (
		where = []string{"s.organization_id = ?"}
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
	if f.Status != "" {
		where = append(where, "s.status = ?")
		args = append(args, string(f.Status))
	}

	rows, err := r.c.query(ctx,
		sessionViewSelect+` WHERE `+strings.Join(where, " AND ")+` ORDER BY s.start_at, s.id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SessionView
	for rows.Next() {
		v, err := scanSessionView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update never touches a canceled session, so an edit racing a cancel
// cannot reopen it.
func (r *classSessionsRepo) Update(ctx context.Context, s domain.ClassSession) error {
	return r.c.execOne(ctx, `
		UPDATE class_sessions
		SET location_id = ?, start_at = ?, end_at = ?, capacity_total = ?,
		    capacity_kvp = ?, status = ?, updated_at = ?
		WHERE id = ? AND status <> 'canceled'`,
		s.LocationID, s.StartAt.UTC(), s.EndAt.UTC(), s.CapacityTotal,
		s.CapacityKVP, string(s.Status), s.UpdatedAt.UTC(), s.ID,
	)
}

func (r *classSessionsRepo) Lock(ctx context.Context, id string) error {
	return r.c.lock(ctx, "class_sessions", id)
}

func (r *classSessionsRepo) SetStatus(ctx context.Context, id string, status domain.SessionStatus, from []domain.SessionStatus, now time.Time) error {
	query := `UPDATE class_sessions SET status = ?, updated_at = ? WHERE id = ?`
	args := []any{string(status), now.UTC(), id}
	if len(from) > 0 {
		query += ` AND status IN (` + placeholders(len(from)) + `)`
		for _, st := range from {
			args = append(args, string(st))
		}
	}
	return r.c.execOne(ctx, query, args...)
}

func scanSessionView(s scanner) (domain.SessionView, error) {
	var (
		v      domain.SessionView
		status string
	)
	err := s.Scan(
		&v.ID, &v.OrganizationID, &v.TemplateID, &v.LocationID, &v.StartAt, &v.EndAt,
		&v.CapacityTotal, &v.CapacityKVP, &status, &v.CreatedAt, &v.UpdatedAt,
		&v.ClassTitle, &v.LocationName, &v.Booked,
	)
	if err != nil {
		return domain.SessionView{}, err
	}
	v.Status = domain.SessionStatus(status)
	v.StartAt = v.StartAt.UTC()
	v.EndAt = v.EndAt.UTC()
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return v, nil
}
