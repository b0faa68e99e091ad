package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

type refreshTokensRepo struct {
	c conn
}

func (r *refreshTokensRepo) Create(ctx context.Context, t domain.RefreshToken) error {
	return r.c.insert(ctx, `
		INSERT INTO refresh_tokens (
			id, account_id, token_hash, session_id, amr, expires_at, revoked_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, NULL, ?, ?)`,
		t.ID, t.AccountID, t.TokenHash, t.SessionID, joinFields(t.AMR),
		t.ExpiresAt.UTC(), t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)
}

func (r *refreshTokensRepo) GetByHash(ctx context.Context, hash string) (domain.RefreshToken, error) {
	var (
		t         domain.RefreshToken
		amr       string
		revokedAt sql.NullTime
	)
	err := r.c.queryRow(ctx, `
		SELECT id, account_id, token_hash, session_id, amr, expires_at, revoked_at, created_at, updated_at
		FROM refresh_tokens WHERE token_hash = ?`, hash,
	).Scan(&t.ID, &t.AccountID, &t.TokenHash, &t.SessionID, &amr, &t.ExpiresAt, &revokedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}

	t.AMR = splitFields(amr)
	t.Revoked = revokedAt.Valid
	t.ExpiresAt = t.ExpiresAt.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *refreshTokensRepo) Revoke(ctx context.Context, hash string, now time.Time) error {
	return r.c.execOne(ctx, `
		UPDATE refresh_tokens SET revoked_at = ?, updated_at = ?
		WHERE token_hash = ? AND revoked_at IS NULL`,
		now.UTC(), now.UTC(), hash,
	)
}

func (r *refreshTokensRepo) RevokeAllForAccount(ctx context.Context, accountID string, now time.Time) error {
	_, err := r.c.exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = ?, updated_at = ?
		WHERE account_id = ? AND revoked_at IS NULL`,
		now.UTC(), now.UTC(), accountID,
	)
	return err
}

func (r *refreshTokensRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.c.exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type mfaSessionsRepo struct {
	c conn
}

const mfaSessionColumns = `id, account_id, session_id, amr, attempts, created_at, expires_at`

func (r *mfaSessionsRepo) Create(ctx context.Context, s domain.MFASession) error {
	return r.c.insert(ctx, `
		INSERT INTO mfa_sessions (`+mfaSessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.AccountID, s.SessionID, joinFields(s.AMR), s.Attempts,
		s.CreatedAt.UTC(), s.ExpiresAt.UTC(),
	)
}

func (r *mfaSessionsRepo) Get(ctx context.Context, id string, now time.Time) (domain.MFASession, error) {
	s, err := scanMFASession(r.c.queryRow(ctx,
		`SELECT `+mfaSessionColumns+` FROM mfa_sessions WHERE id = ? AND expires_at > ?`,
		id, now.UTC(),
	))
	return s, mapNotFound(err)
}

func (r *mfaSessionsRepo) IncrementAttempts(ctx context.Context, id string) (domain.MFASession, error) {
	err := conflictAsNotFound(r.c.execOne(ctx,
		`UPDATE mfa_sessions SET attempts = attempts + 1 WHERE id = ?`, id))
	if err != nil {
		return domain.MFASession{}, err
	}
	s, err := scanMFASession(r.c.queryRow(ctx,
		`SELECT `+mfaSessionColumns+` FROM mfa_sessions WHERE id = ?`, id))
	return s, mapNotFound(err)
}

func (r *mfaSessionsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.c.exec(ctx, `DELETE FROM mfa_sessions WHERE id = ?`, id)
	return err
}

func (r *mfaSessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.c.exec(ctx, `DELETE FROM mfa_sessions WHERE expires_at <= ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanMFASession(s scanner) (domain.MFASession, error) {
	var (
		m   domain.MFASession
		amr string
	)
	if err := s.Scan(&m.ID, &m.AccountID, &m.SessionID, &amr, &m.Attempts, &m.CreatedAt, &m.ExpiresAt); err != nil {
		return domain.MFASession{}, err
	}
	m.AMR = splitFields(amr)
	m.CreatedAt = m.CreatedAt.UTC()
	m.ExpiresAt = m.ExpiresAt.UTC()
	return m, nil
}
