package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
)

type accountsRepo struct {
	c conn
}

const accountColumns = `id, organization_id, email, first_name, last_name, password_hash,
	role, status, mfa_secret, mfa_enabled_at, created_at, updated_at`

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	return r.c.insert(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.OrganizationID, strings.ToLower(a.Email), a.FirstName, a.LastName, a.PasswordHash,
		string(a.Role), string(a.Status), mapOptionalString(a.MFASecret), mapOptionalTime(a.MFAEnabledAt),
		a.CreatedAt.UTC(), a.UpdatedAt.UTC(),
	)
}

func (r *accountsRepo) Get(ctx context.Context, id string) (domain.Account, error) {
	a, err := scanAccount(r.c.queryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id))
	return a, mapNotFound(err)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	a, err := scanAccount(r.c.queryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?
		 ORDER BY CASE status WHEN 'active' THEN 0 ELSE 1 END, created_at DESC
		 LIMIT 1`, strings.ToLower(email)))
	return a, mapNotFound(err)
}

func (r *accountsRepo) ListByOrganization(ctx context.Context, orgID string) ([]domain.Account, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE organization_id = ? ORDER BY created_at, id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) Remove(ctx context.Context, id, orgID string, now time.Time) error {
	return r.c.execOne(ctx, `
		UPDATE accounts SET status = 'removed', updated_at = ?
		WHERE id = ? AND organization_id = ? AND status = 'active'`,
		now.UTC(), id, orgID,
	)
}

func (r *accountsRepo) SetPassword(ctx context.Context, id, hash string, now time.Time) error {
	return r.c.execOne(ctx, `
		UPDATE accounts SET password_hash = ?, updated_at = ?
		WHERE id = ? AND status = 'active'`,
		hash, now.UTC(), id,
	)
}

func (r *accountsRepo) SetMFASecret(ctx context.Context, id, secret string, now time.Time) error {
	return conflictAsNotFound(r.c.execOne(ctx,
		`UPDATE accounts SET mfa_secret = ?, mfa_enabled_at = NULL, updated_at = ? WHERE id = ?`,
		secret, now.UTC(), id,
	))
}

func (r *accountsRepo) EnableMFA(ctx context.Context, id string, now time.Time) error {
	return conflictAsNotFound(r.c.execOne(ctx, `
		UPDATE accounts SET mfa_enabled_at = ?, updated_at = ?
		WHERE id = ? AND mfa_secret IS NOT NULL`,
		now.UTC(), now.UTC(), id,
	))
}

func (r *accountsRepo) DisableMFA(ctx context.Context, id string, now time.Time) error {
	return conflictAsNotFound(r.c.execOne(ctx,
		`UPDATE accounts SET mfa_secret = NULL, mfa_enabled_at = NULL, updated_at = ? WHERE id = ?`,
		now.UTC(), id,
	))
}

func scanAccount(s scanner) (domain.Account, error) {
	var (
		a            domain.Account
		role, status string
		secret       sql.NullString
		enabledAt    sql.NullTime
	)
	err := s.Scan(
		&a.ID, &a.OrganizationID, &a.Email, &a.FirstName, &a.LastName, &a.PasswordHash,
		&role, &status, &secret, &enabledAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}

	a.Role = domain.Role(role)
	a.Status = domain.AccountStatus(status)
	a.MFASecret = mapNullStringPtr(secret)
	a.MFAEnabledAt = mapNullTimePtr(enabledAt)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}

// conflictAsNotFound is for plain updates by primary key, where zero rows
// can only mean the row does not exist.
func conflictAsNotFound(err error) error {
	if errors.Is(err, store.ErrConflict) {
		return store.ErrNotFound
	}
	return err
}
