package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/kidventure/partnerhub/pkg/jwtx"
	"github.com/kidventure/partnerhub/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

const (
	// MaxMFAAttempts is the maximum number of failed codes per MFA session
	MaxMFAAttempts = 5

	MFASessionTTL = 5 * time.Minute
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrInvalidGrant       = errors.New("invalid_grant")
	ErrTooManyAttempts    = errors.New("too_many_attempts")
)

// MFARequiredError is returned by the password grant when the account has
// TOTP enabled. MFAToken identifies the pending challenge.
type MFARequiredError struct {
	MFAToken  string
	ExpiresIn time.Duration
}

func (e *MFARequiredError) Error() string { return "mfa_required" }

type TokenService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	Clock      Clock
	Issuer     string
	Audience   []string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// PasswordGrant signs an account in with email and password. Accounts with
// MFA enabled get a *MFARequiredError instead of tokens.
func (s *TokenService) PasswordGrant(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	now := s.Clock.now()
	l := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	// 1. Load the account
	account, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("password grant for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, transient(err)
	}

	// 2. Verify the password, then the account state
	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		l.Info("password grant with wrong password", slog.String("account_id", account.ID))
		return nil, ErrInvalidCredentials
	}
	if !account.Active() {
		l.Warn("password grant for removed account", slog.String("account_id", account.ID))
		return nil, ErrInvalidCredentials
	}

	sessionID := idx.NewAt(now).String()
	amr := []string{jwtx.AMRPassword}

	// 3. Second factor required: park the sign-in in an MFA session
	if account.MFAEnabled() {
		mfaToken, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, err
		}
		err = s.Store.MFASessions().Create(ctx, domain.MFASession{
			ID:        mfaToken,
			AccountID: account.ID,
			SessionID: sessionID,
			AMR:       amr,
			CreatedAt: now,
			ExpiresAt: now.Add(MFASessionTTL),
		})
		if err != nil {
			l.Error("failed to create MFA session", slog.Any("error", err))
			return nil, transient(err)
		}
		l.Info("password grant requires MFA", slog.String("account_id", account.ID))
		return nil, &MFARequiredError{MFAToken: mfaToken, ExpiresIn: MFASessionTTL}
	}

	// 4. Issue tokens
	var pair *domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		pair, err = s.issue(ctx, tx, account, sessionID, amr, now)
		return err
	})
	if err != nil {
		l.Error("failed to issue tokens", slog.Any("error", err))
		return nil, transient(err)
	}

	l.Info("account signed in",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
	)
	return pair, nil
}

// MFAGrant completes a password grant with a TOTP code. A session allows
// MaxMFAAttempts wrong codes.
func (s *TokenService) MFAGrant(ctx context.Context, mfaToken, code string) (*domain.TokenPair, error) {
	now := s.Clock.now()
	l := slogx.FromContext(ctx)

	// 1. Retrieve MFA session
	session, err := s.Store.MFASessions().Get(ctx, mfaToken, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidGrant
		}
		return nil, transient(err)
	}

	// 2. Check if max attempts exceeded
	if session.Attempts >= MaxMFAAttempts {
		_ = s.Store.MFASessions().Delete(ctx, mfaToken)
		l.Warn("MFA session exceeded max attempts",
			slog.String("account_id", session.AccountID),
			slog.Int("attempts", session.Attempts),
		)
		return nil, ErrTooManyAttempts
	}

	// 3. Load the account and check the code
	account, err := s.Store.Accounts().Get(ctx, session.AccountID)
	if err != nil {
		return nil, transient(err)
	}
	if !account.Active() || account.MFASecret == nil || !totp.Validate(strings.TrimSpace(code), *account.MFASecret) {
		updated, err := s.Store.MFASessions().IncrementAttempts(ctx, mfaToken)
		if err != nil {
			l.Error("failed to increment MFA attempts", slog.Any("error", err))
			return nil, ErrInvalidGrant
		}
		l.Warn("MFA validation failed",
			slog.String("account_id", account.ID),
			slog.Int("attempts", updated.Attempts),
		)
		return nil, ErrInvalidGrant
	}

	// 4. Issue tokens and consume the session atomically
	amr := dedupe(append(session.AMR, jwtx.AMROTP))
	var pair *domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if pair, err = s.issue(ctx, tx, account, session.SessionID, amr, now); err != nil {
			return err
		}
		return tx.MFASessions().Delete(ctx, mfaToken)
	})
	if err != nil {
		return nil, transient(err)
	}

	l.Info("account signed in with MFA", slog.String("account_id", account.ID))
	return pair, nil
}

// RefreshGrant rotates a refresh token. The old token is revoked with a
// conditional update, so replaying it after a rotation fails.
func (s *TokenService) RefreshGrant(ctx context.Context, refreshOpaque string) (*domain.TokenPair, error) {
	now := s.Clock.now()
	l := slogx.FromContext(ctx)

	// 1. Lookup the persisted refresh row by token fingerprint
	fp := cryptox.FingerprintToken(refreshOpaque)
	rt, err := s.Store.RefreshTokens().GetByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, transient(err)
	}

	// 2. Validate token is not expired or revoked
	if rt.Revoked || !now.Before(rt.ExpiresAt) {
		return nil, ErrInvalidRefresh
	}

	// 3. The account must still be active; its current role is used
	account, err := s.Store.Accounts().Get(ctx, rt.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, transient(err)
	}
	if !account.Active() {
		l.Warn("refresh for removed account", slog.String("account_id", account.ID))
		return nil, ErrInvalidRefresh
	}

	amr := dedupe(append(rt.AMR, jwtx.AMRRefresh))

	// 4. Revoke the old token and issue a new pair in one transaction
	var pair *domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.RefreshTokens().Revoke(ctx, fp, now); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrInvalidRefresh
			}
			return err
		}
		var err error
		pair, err = s.issue(ctx, tx, account, rt.SessionID, amr, now)
		return err
	})
	if errors.Is(err, ErrInvalidRefresh) {
		l.Warn("refresh token replayed", slog.String("account_id", account.ID))
		return nil, err
	}
	if err != nil {
		return nil, transient(err)
	}
	return pair, nil
}

// Revoke signs a refresh token out. Unknown or already revoked tokens are
// not an error.
func (s *TokenService) Revoke(ctx context.Context, refreshOpaque string) error {
	err := s.Store.RefreshTokens().Revoke(ctx, cryptox.FingerprintToken(refreshOpaque), s.Clock.now())
	if err == nil || errors.Is(err, store.ErrConflict) {
		return nil
	}
	return transient(err)
}

// issue signs an access token and stores a new refresh token on st.
func (s *TokenService) issue(
	ctx context.Context,
	st store.Store,
	account domain.Account,
	sessionID string,
	amr []string,
	now time.Time,
) (*domain.TokenPair, error) {
	scopes := account.Role.Scopes()

	claims := jwtx.NewAccessClaims(jwtx.AccessParams{
		Subject:  account.ID,
		SID:      sessionID,
		Role:     string(account.Role),
		OrgID:    account.OrganizationID,
		Email:    account.Email,
		Scopes:   scopes,
		AMR:      amr,
		Issuer:   s.Issuer,
		Audience: s.Audience,
		TTL:      s.accessTTL(),
	}, now)

	// Use GetSigner() to distribute signing across multiple keys
	accessToken, err := s.KeyManager.GetSigner().Sign(claims)
	if err != nil {
		return nil, err
	}

	refreshOpaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, err
	}

	refreshTTL := s.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = jwtx.DefaultRefreshTokenTTL
	}
	err = st.RefreshTokens().Create(ctx, domain.RefreshToken{
		ID:        idx.NewAt(now).String(),
		AccountID: account.ID,
		TokenHash: cryptox.FingerprintToken(refreshOpaque),
		SessionID: sessionID,
		AMR:       amr,
		ExpiresAt: now.Add(refreshTTL),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshOpaque,
		TokenType:    "Bearer",
		ExpiresIn:    s.accessTTL(),
		Scope:        strings.Join(scopes, " "),
		Role:         account.Role,
	}, nil
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.AccessTTL
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
