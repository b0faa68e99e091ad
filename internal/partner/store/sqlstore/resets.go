package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

type passwordResetsRepo struct {
	c conn
}

func (r *passwordResetsRepo) Create(ctx context.Context, p domain.PasswordReset) error {
	return r.c.insert(ctx, `
		INSERT INTO password_resets (id, account_id, token_hash, expires_at, used_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.AccountID, p.TokenHash, p.ExpiresAt.UTC(), mapOptionalTime(p.UsedAt), p.CreatedAt.UTC(),
	)
}

func (r *passwordResetsRepo) GetByTokenHash(ctx context.Context, hash string) (domain.PasswordReset, error) {
	var (
		p      domain.PasswordReset
		usedAt sql.NullTime
	)
	err := r.c.queryRow(ctx, `
		SELECT id, account_id, token_hash, expires_at, used_at, created_at
		FROM password_resets WHERE token_hash = ?`, hash,
	).Scan(&p.ID, &p.AccountID, &p.TokenHash, &p.ExpiresAt, &usedAt, &p.CreatedAt)
	if err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}

	p.UsedAt = mapNullTimePtr(usedAt)
	p.ExpiresAt = p.ExpiresAt.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func (r *passwordResetsRepo) Consume(ctx context.Context, id, hash string, now time.Time) error {
	return r.c.execOne(ctx, `
		UPDATE password_resets SET used_at = ?
		WHERE id = ? AND token_hash = ? AND used_at IS NULL AND expires_at > ?`,
		now.UTC(), id, hash, now.UTC(),
	)
}

func (r *passwordResetsRepo) ConsumeAllForAccount(ctx context.Context, accountID string, now time.Time) error {
	_, err := r.c.exec(ctx, `
		UPDATE password_resets SET used_at = ?
		WHERE account_id = ? AND used_at IS NULL`,
		now.UTC(), accountID,
	)
	return err
}

func (r *passwordResetsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.c.exec(ctx, `DELETE FROM password_resets WHERE expires_at <= ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
