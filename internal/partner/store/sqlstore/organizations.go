package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

type organizationsRepo struct {
	c conn
}

func (r *organizationsRepo) Create(ctx context.Context, o domain.Organization) error {
	return r.c.insert(ctx, `
		INSERT INTO organizations (
			id, display_name, legal_name, timezone, credit_value_cents,
			stripe_connect_status, stripe_connect_url, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.DisplayName, o.LegalName, o.Timezone, o.CreditValueCents,
		string(o.StripeConnectStatus), mapOptionalString(o.StripeConnectURL),
		o.CreatedAt.UTC(), o.UpdatedAt.UTC(),
	)
}

func (r *organizationsRepo) Get(ctx context.Context, id string) (domain.Organization, error) {
	var (
		o      domain.Organization
		status string
		url    sql.NullString
	)
	err := r.c.queryRow(ctx, `
		SELECT id, display_name, legal_name, timezone, credit_value_cents,
		       stripe_connect_status, stripe_connect_url, created_at, updated_at
		FROM organizations WHERE id = ?`, id,
	).Scan(
		&o.ID, &o.DisplayName, &o.LegalName, &o.Timezone, &o.CreditValueCents,
		&status, &url, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}

	o.StripeConnectStatus = domain.StripeConnectStatus(status)
	o.StripeConnectURL = mapNullStringPtr(url)
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return o, nil
}

func (r *organizationsRepo) UpdateDisplayName(ctx context.Context, id, name string, now time.Time) error {
	err := r.c.execOne(ctx,
		`UPDATE organizations SET display_name = ?, updated_at = ? WHERE id = ?`,
		name, now.UTC(), id,
	)
	return conflictAsNotFound(err)
}

func (r *organizationsRepo) Lock(ctx context.Context, id string) error {
	return r.c.lock(ctx, "organizations", id)
}

type locationsRepo struct {
	c conn
}

const locationColumns = `id, organization_id, name, address, active, created_at`

func (r *locationsRepo) Create(ctx context.Context, l domain.Location) error {
	return r.c.insert(ctx, `
		INSERT INTO locations (`+locationColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.OrganizationID, l.Name, l.Address, l.Active, l.CreatedAt.UTC(),
	)
}

func (r *locationsRepo) Get(ctx context.Context, id string) (domain.Location, error) {
	l, err := scanLocation(r.c.queryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id))
	return l, mapNotFound(err)
}

func (r *locationsRepo) ListByOrganization(ctx context.Context, orgID string) ([]domain.Location, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+locationColumns+` FROM locations
		WHERE organization_id = ? ORDER BY name, id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(s scanner) (domain.Location, error) {
	var l domain.Location
	if err := s.Scan(&l.ID, &l.OrganizationID, &l.Name, &l.Address, &l.Active, &l.CreatedAt); err != nil {
		return domain.Location{}, err
	}
	l.CreatedAt = l.CreatedAt.UTC()
	return l, nil
}
