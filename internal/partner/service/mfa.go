package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/slogx"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")
	ErrMFANotEnrolled    = errors.New("MFA not enrolled for this account")
	ErrMFANotEnabled     = errors.New("MFA not enabled for this account")
	ErrMFAAlreadyEnabled = errors.New("MFA already enabled for this account")
)

type MFAService struct {
	Store  store.Store
	Clock  Clock
	Issuer string // shown in authenticator apps, e.g. "KidVenture Pass"
}

// EnrollTOTP generates a TOTP secret for the caller. MFA is only enabled
// once a code from the secret is verified. Enrolling again before that
// replaces the secret.
func (s *MFAService) EnrollTOTP(ctx context.Context, p domain.Principal) (domain.MFAEnrollment, error) {
	account, err := s.account(ctx, p)
	if err != nil {
		return domain.MFAEnrollment{}, err
	}
	if account.MFAEnabled() {
		return domain.MFAEnrollment{}, ErrMFAAlreadyEnabled
	}

	// Generate TOTP key
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: account.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.MFAEnrollment{}, err
	}

	// Store the secret (but don't enable MFA yet)
	if err := s.Store.Accounts().SetMFASecret(ctx, account.ID, key.Secret(), s.Clock.now()); err != nil {
		return domain.MFAEnrollment{}, transient(err)
	}

	slogx.FromContext(ctx).Info("TOTP enrolment started", slog.String("account_id", account.ID))
	return domain.MFAEnrollment{
		Secret:  key.Secret(),
		URL:     key.URL(),
		Issuer:  s.Issuer,
		Account: account.Email,
	}, nil
}

// VerifyTOTP enables MFA when code matches the enrolled secret.
func (s *MFAService) VerifyTOTP(ctx context.Context, p domain.Principal, code string) error {
	account, err := s.account(ctx, p)
	if err != nil {
		return err
	}
	if account.MFAEnabled() {
		return ErrMFAAlreadyEnabled
	}
	if account.MFASecret == nil {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(strings.TrimSpace(code), *account.MFASecret) {
		return ErrInvalidTOTPCode
	}

	if err := s.Store.Accounts().EnableMFA(ctx, account.ID, s.Clock.now()); err != nil {
		return transient(err)
	}
	slogx.FromContext(ctx).Info("MFA enabled", slog.String("account_id", account.ID))
	return nil
}

// DisableTOTP turns MFA off. A current code is required.
func (s *MFAService) DisableTOTP(ctx context.Context, p domain.Principal, code string) error {
	account, err := s.account(ctx, p)
	if err != nil {
		return err
	}
	if !account.MFAEnabled() || account.MFASecret == nil {
		return ErrMFANotEnabled
	}
	if !totp.Validate(strings.TrimSpace(code), *account.MFASecret) {
		return ErrInvalidTOTPCode
	}

	if err := s.Store.Accounts().DisableMFA(ctx, account.ID, s.Clock.now()); err != nil {
		return transient(err)
	}
	slogx.FromContext(ctx).Info("MFA disabled", slog.String("account_id", account.ID))
	return nil
}

func (s *MFAService) account(ctx context.Context, p domain.Principal) (domain.Account, error) {
	account, err := s.Store.Accounts().Get(ctx, p.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrNotFound
		}
		return domain.Account{}, transient(err)
	}
	return account, nil
}
