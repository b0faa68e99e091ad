package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/notify"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

const DefaultPasswordResetTTL = time.Hour

const msgResetInvalid = "This password reset link is invalid or has expired. Please request a new one."

// PasswordService runs the forgot and reset password flow.
type PasswordService struct {
	Store store.Store
	Clock Clock

	// TTL of reset links. Zero means DefaultPasswordResetTTL.
	TTL time.Duration

	Mailer       notify.Sender
	DashboardURL string
}

type ResetPasswordRequest struct {
	Token                string
	Password             string
	PasswordConfirmation string
}

// Forgot emails a reset link when email belongs to an active account. It
// reports nothing back, so callers cannot tell whether the account exists.
func (s *PasswordService) Forgot(ctx context.Context, email string) {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	email, err := normalizeEmail(email)
	if err != nil {
		log.Info("password reset for malformed email")
		return
	}

	account, err := s.Store.Accounts().GetByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Info("password reset for unknown email")
		return
	case err != nil:
		log.Error("failed to fetch account for password reset", slog.Any("error", err))
		return
	case !account.Active():
		log.Warn("password reset for removed account", slog.String("account_id", account.ID))
		return
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultPasswordResetTTL
	}
	reset := domain.PasswordReset{
		ID:        idx.NewAt(now).String(),
		AccountID: account.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.Store.PasswordResets().Create(ctx, reset); err != nil {
		log.Error("failed to store password reset", slog.Any("error", err))
		return
	}

	msg, err := notify.ResetEmail(notify.Reset{
		To:           account.Email,
		FirstName:    account.FirstName,
		DashboardURL: s.DashboardURL,
		Token:        token,
		ExpiresAt:    reset.ExpiresAt,
	})
	if err == nil && s.Mailer != nil {
		_, err = s.Mailer.Send(ctx, msg)
	}
	if err != nil {
		log.Error("failed to deliver password reset",
			slog.String("reset_id", reset.ID),
			slog.Any("error", err),
		)
		return
	}

	log.Info("password reset requested",
		slog.String("reset_id", reset.ID),
		slog.String("account_id", account.ID),
	)
}

// Reset sets a new password with a reset token. The token is consumed by a
// conditional update in the same transaction as the password change, so it
// works once. Every reset link and refresh token of the account stops
// working.
func (s *PasswordService) Reset(ctx context.Context, req ResetPasswordRequest) error {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	// 1. Validate input
	if strings.TrimSpace(req.Token) == "" {
		return newError(ErrInvalidToken, "Missing password reset token.")
	}
	if err := validateNewPassword(req.Password, req.PasswordConfirmation); err != nil {
		return err
	}

	// 2. Pre-read the link
	reset, err := s.Store.PasswordResets().GetByTokenHash(ctx, cryptox.FingerprintToken(req.Token))
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Warn("password reset with unknown token")
		return newError(ErrNotFound, msgResetInvalid)
	case err != nil:
		log.Error("failed to fetch password reset", slog.Any("error", err))
		return transient(err)
	case !reset.Usable(now):
		log.Warn("password reset with used or expired token", slog.String("reset_id", reset.ID))
		return newError(ErrExpired, msgResetInvalid)
	}

	passwordHash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	// 3. Consume, set the password and sign out everywhere together
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.PasswordResets().Consume(ctx, reset.ID, reset.TokenHash, now)
		if errors.Is(err, store.ErrConflict) {
			log.Warn("password reset token used concurrently", slog.String("reset_id", reset.ID))
			return newError(ErrExpired, msgResetInvalid)
		}
		if err != nil {
			return transient(err)
		}

		err = tx.Accounts().SetPassword(ctx, reset.AccountID, passwordHash, now)
		if errors.Is(err, store.ErrConflict) {
			log.Warn("password reset for removed account", slog.String("account_id", reset.AccountID))
			return newError(ErrNotFound, msgResetInvalid)
		}
		if err != nil {
			return transient(err)
		}

		if err := tx.PasswordResets().ConsumeAllForAccount(ctx, reset.AccountID, now); err != nil {
			return transient(err)
		}
		if err := tx.RefreshTokens().RevokeAllForAccount(ctx, reset.AccountID, now); err != nil {
			return transient(err)
		}
		return nil
	})
	if err != nil {
		if !isServiceError(err) {
			err = transient(err)
		}
		if errors.Is(err, ErrTransient) {
			log.Error("password reset failed", slog.Any("error", err))
		}
		return err
	}

	log.Info("password reset", slog.String("account_id", reset.AccountID))
	return nil
}
