package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

type invitationsRepo struct {
	c conn
}

const invitationColumns = `id, organization_id, token_hash, contact_email, role,
	claimed_by_account_id, claimed_at, expires_at, created_by, created_at, updated_at`

func (r *invitationsRepo) Create(ctx context.Context, inv domain.Invitation) error {
	return r.c.insert(ctx, `
		INSERT INTO invitations (`+invitationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.OrganizationID, inv.TokenHash, strings.ToLower(inv.ContactEmail), string(inv.Role),
		mapOptionalString(inv.ClaimedByAccountID), mapOptionalTime(inv.ClaimedAt), mapOptionalTime(inv.ExpiresAt),
		mapOptionalString(inv.CreatedBy), inv.CreatedAt.UTC(), inv.UpdatedAt.UTC(),
	)
}

func (r *invitationsRepo) Get(ctx context.Context, id string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.c.queryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id))
	return inv, mapNotFound(err)
}

func (r *invitationsRepo) GetByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.c.queryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash))
	return inv, mapNotFound(err)
}

// Claim is the single point where an invitation changes hands. The WHERE
// clause re-checks every claimability rule so that of two concurrent
// claimers only one can match.
func (r *invitationsRepo) Claim(ctx context.Context, id, hash, accountID string, now time.Time) error {
	now = now.UTC()
	return r.c.execOne(ctx, `
		UPDATE invitations
		SET claimed_by_account_id = ?, claimed_at = ?, updated_at = ?
		WHERE id = ?
		  AND token_hash = ?
		  AND claimed_by_account_id IS NULL
		  AND (expires_at IS NULL OR expires_at > ?)`,
		accountID, now, now, id, hash, now,
	)
}

func (r *invitationsRepo) ListPending(ctx context.Context, orgID string, now time.Time) ([]domain.Invitation, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+invitationColumns+` FROM invitations
		WHERE organization_id = ?
		  AND claimed_by_account_id IS NULL
		  AND (expires_at IS NULL OR expires_at > ?)
		ORDER BY created_at, id`,
		orgID, now.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func scanInvitation(s scanner) (domain.Invitation, error) {
	var (
		inv                  domain.Invitation
		role                 string
		claimedBy, createdBy sql.NullString
		claimedAt, expiresAt sql.NullTime
	)
	err := s.Scan(
		&inv.ID, &inv.OrganizationID, &inv.TokenHash, &inv.ContactEmail, &role,
		&claimedBy, &claimedAt, &expiresAt, &createdBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, err
	}

	inv.Role = domain.Role(role)
	inv.ClaimedByAccountID = mapNullStringPtr(claimedBy)
	inv.ClaimedAt = mapNullTimePtr(claimedAt)
	inv.ExpiresAt = mapNullTimePtr(expiresAt)
	inv.CreatedBy = mapNullStringPtr(createdBy)
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.UpdatedAt = inv.UpdatedAt.UTC()
	return inv, nil
}
