package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

const DefaultInvitationTTL = 7 * 24 * time.Hour

type InvitationService struct {
	Store store.Store
	Clock Clock

	// TTL of minted invitations. Zero means DefaultInvitationTTL.
	TTL time.Duration
}

// ClaimRequest carries the signup form. InvitationID is optional; when
// empty the invitation is resolved from Token.
type ClaimRequest struct {
	InvitationID         string
	Token                string
	FirstName            string
	LastName             string
	Password             string
	PasswordConfirmation string
}

// Verify resolves an invitation token for the signup page. It never
// changes state, so repeated calls give the same answer until a claim.
func (s *InvitationService) Verify(ctx context.Context, token string) (domain.InvitationDetails, error) {
	inv, err := s.lookup(ctx, token, s.Clock.now())
	if err != nil {
		return domain.InvitationDetails{}, err
	}

	org, err := s.Store.Organizations().Get(ctx, inv.OrganizationID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to fetch invitation organization",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.InvitationDetails{}, transient(err)
	}

	return domain.InvitationDetails{
		InvitationID:     inv.ID,
		ContactEmail:     inv.ContactEmail,
		OrganizationName: org.DisplayName,
		Role:             inv.Role,
		ExpiresAt:        inv.ExpiresAt,
	}, nil
}

// lookup finds the invitation for token and checks it can still be claimed
// at now.
func (s *InvitationService) lookup(ctx context.Context, token string, now time.Time) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(token) == "" {
		return domain.Invitation{}, newError(ErrInvalidToken, "Missing invitation token.")
	}

	inv, err := s.Store.Invitations().GetByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation lookup with unknown token")
			return domain.Invitation{}, newError(ErrNotFound, "Invalid or expired invitation link.")
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, transient(err)
	}

	if inv.Claimed() {
		log.Warn("invitation already claimed", slog.String("invitation_id", inv.ID))
		return domain.Invitation{}, ErrAlreadyClaimed
	}
	if inv.Expired(now) {
		log.Warn("invitation expired",
			slog.String("invitation_id", inv.ID),
			slog.Time("expires_at", *inv.ExpiresAt),
		)
		return domain.Invitation{}, newError(ErrExpired, "Invalid or expired invitation link.")
	}
	if strings.TrimSpace(inv.ContactEmail) == "" {
		log.Error("invitation has no contact email", slog.String("invitation_id", inv.ID))
		return domain.Invitation{}, newError(ErrInvalidToken,
			"This invitation is missing an email address. Please contact support.")
	}

	return inv, nil
}

// Claim creates the account an invitation was issued for. The account email
// always comes from the invitation. The invitation is claimed with a
// conditional update and the account inserted in the same transaction, so
// of two concurrent claims exactly one commits.
func (s *InvitationService) Claim(ctx context.Context, req ClaimRequest) (domain.Account, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	// 1. Validate input
	if strings.TrimSpace(req.Token) == "" {
		return domain.Account{}, newError(ErrInvalidToken, "Missing invitation token.")
	}
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return domain.Account{}, newError(ErrInvalidRequest, "Please enter your full name.")
	}
	if err := validateNewPassword(req.Password, req.PasswordConfirmation); err != nil {
		return domain.Account{}, err
	}

	// 2. Pre-read: the invitation must look claimable right now
	inv, err := s.lookup(ctx, req.Token, now)
	if err != nil {
		return domain.Account{}, err
	}
	if req.InvitationID != "" && req.InvitationID != inv.ID {
		log.Warn("claim token does not belong to invitation",
			slog.String("invitation_id", req.InvitationID),
		)
		return domain.Account{}, newError(ErrNotFound, "Invalid or expired invitation link.")
	}

	// 3. Hash the password outside the transaction
	passwordHash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:             idx.NewAt(now).String(),
		OrganizationID: inv.OrganizationID,
		Email:          strings.ToLower(strings.TrimSpace(inv.ContactEmail)),
		FirstName:      firstName,
		LastName:       lastName,
		PasswordHash:   passwordHash,
		Role:           inv.Role,
		Status:         domain.AccountActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// 4. Claim, then create the account. Both commit or neither does.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Invitations().Claim(ctx, inv.ID, inv.TokenHash, account.ID, now)
		if errors.Is(err, store.ErrConflict) {
			// The pre-read saw it claimable, so another request won.
			log.Warn("invitation claim lost race", slog.String("invitation_id", inv.ID))
			return ErrClaimRaceLost
		}
		if err != nil {
			log.Error("failed to claim invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return transient(err)
		}

		err = tx.Accounts().Create(ctx, account)
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("claim for email that already has an account",
				slog.String("invitation_id", inv.ID),
			)
			return newError(ErrAccountCreationFailed,
				"An account with this email already exists. Please sign in instead.")
		}
		if err != nil {
			log.Error("failed to create account",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return transient(err)
		}
		return nil
	})
	if err != nil {
		if isServiceError(err) {
			return domain.Account{}, err
		}
		log.Error("claim transaction failed", slog.Any("error", err))
		return domain.Account{}, transient(err)
	}

	log.Info("invitation claimed",
		slog.String("invitation_id", inv.ID),
		slog.String("account_id", account.ID),
		slog.String("organization_id", account.OrganizationID),
		slog.String("role", string(account.Role)),
	)
	return account, nil
}

// Mint stores a new invitation for email in orgID and returns it with the
// raw token. createdBy is nil for invitations seeded by the platform. Mint
// runs on st so callers can include it in a transaction; the organization
// row stays locked from the duplicate checks to the insert.
func (s *InvitationService) Mint(
	ctx context.Context,
	st store.Store,
	orgID string,
	email string,
	role domain.Role,
	createdBy *string,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	email, err := normalizeEmail(email)
	if err != nil {
		return domain.Invitation{}, "", err
	}
	if !role.Valid() {
		return domain.Invitation{}, "", newError(ErrInvalidRequest, "Role must be staff or manager.")
	}

	// 1. Generate the token; only its fingerprint is stored
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}
	expiresAt := now.Add(ttl)

	inv := domain.Invitation{
		ID:             idx.NewAt(now).String(),
		OrganizationID: orgID,
		TokenHash:      cryptox.FingerprintToken(token),
		ContactEmail:   email,
		Role:           role,
		ExpiresAt:      &expiresAt,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = inTx(ctx, st, func(tx store.Tx) error {
		err := tx.Organizations().Lock(ctx, orgID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return transient(err)
		}

		// 2. The email must not already belong to an active account
		existing, err := tx.Accounts().GetByEmail(ctx, email)
		switch {
		case err == nil && existing.Active():
			log.Warn("invitation for email with an active account", slog.String("organization_id", orgID))
			return newError(ErrInvalidRequest, "This email already has an account.")
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return transient(err)
		}

		// 3. Nor have a pending invitation in this organization
		pending, err := tx.Invitations().ListPending(ctx, orgID, now)
		if err != nil {
			return transient(err)
		}
		for _, p := range pending {
			if strings.EqualFold(p.ContactEmail, email) {
				return newError(ErrInvalidRequest, "This email already has a pending invitation.")
			}
		}

		if err := tx.Invitations().Create(ctx, inv); err != nil {
			log.Error("failed to create invitation", slog.Any("error", err))
			return transient(err)
		}
		return nil
	})
	if err != nil {
		if !isServiceError(err) {
			err = transient(err)
		}
		return domain.Invitation{}, "", err
	}

	log.Info("invitation minted",
		slog.String("invitation_id", inv.ID),
		slog.String("organization_id", orgID),
		slog.String("role", string(role)),
		slog.Time("expires_at", expiresAt),
	)
	return inv, token, nil
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return "", newError(ErrInvalidRequest, "Please enter a valid email address.")
	}
	return strings.ToLower(addr.Address), nil
}
