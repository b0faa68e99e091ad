package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/notify"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

type OrganizationService struct {
	Store       store.Store
	Clock       Clock
	Invitations *InvitationService

	// Mailer delivers staff invitations; DashboardURL is where the signup
	// link points.
	Mailer       notify.Sender
	DashboardURL string
}

func (s *OrganizationService) Profile(ctx context.Context, p domain.Principal) (domain.OrganizationProfile, error) {
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return domain.OrganizationProfile{}, err
	}
	locations, err := s.Store.Locations().ListByOrganization(ctx, org.ID)
	if err != nil {
		return domain.OrganizationProfile{}, transient(err)
	}
	staff, err := s.Staff(ctx, p)
	if err != nil {
		return domain.OrganizationProfile{}, err
	}
	return domain.OrganizationProfile{Organization: org, Locations: locations, Staff: staff}, nil
}

// Staff merges active accounts and pending invitations, oldest first.
// Removed accounts are left out.
func (s *OrganizationService) Staff(ctx context.Context, p domain.Principal) ([]domain.StaffMember, error) {
	now := s.Clock.now()
	accounts, err := s.Store.Accounts().ListByOrganization(ctx, p.OrganizationID)
	if err != nil {
		return nil, transient(err)
	}
	pending, err := s.Store.Invitations().ListPending(ctx, p.OrganizationID, now)
	if err != nil {
		return nil, transient(err)
	}

	staff := make([]domain.StaffMember, 0, len(accounts)+len(pending))
	for _, a := range accounts {
		if !a.Active() {
			continue
		}
		staff = append(staff, accountMember(a))
	}
	for _, inv := range pending {
		staff = append(staff, invitationMember(inv))
	}
	sort.SliceStable(staff, func(i, j int) bool { return staff[i].InvitedAt.Before(staff[j].InvitedAt) })
	return staff, nil
}

func (s *OrganizationService) UpdateDisplayName(ctx context.Context, p domain.Principal, name string) (domain.Organization, error) {
	if err := requireManager(p); err != nil {
		return domain.Organization{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Organization{}, newError(ErrInvalidRequest, "Display name is required.")
	}

	err := s.Store.Organizations().UpdateDisplayName(ctx, p.OrganizationID, name, s.Clock.now())
	if errors.Is(err, store.ErrNotFound) {
		return domain.Organization{}, ErrNotFound
	}
	if err != nil {
		return domain.Organization{}, transient(err)
	}
	return loadOrganization(ctx, s.Store, p.OrganizationID)
}

// InviteStaff mints an invitation and emails its signup link. A failed
// delivery is logged; the invitation stays valid.
func (s *OrganizationService) InviteStaff(ctx context.Context, p domain.Principal, email, role string) (domain.StaffMember, error) {
	log := slogx.FromContext(ctx)
	if err := requireManager(p); err != nil {
		return domain.StaffMember{}, err
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return domain.StaffMember{}, newError(ErrInvalidRequest, "Role must be staff or manager.")
	}
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return domain.StaffMember{}, err
	}

	inv, token, err := s.Invitations.Mint(ctx, s.Store, org.ID, email, r, &p.AccountID)
	if err != nil {
		return domain.StaffMember{}, err
	}

	msg, err := notify.InviteEmail(notify.Invite{
		To:               inv.ContactEmail,
		OrganizationName: org.DisplayName,
		Role:             string(inv.Role),
		DashboardURL:     s.DashboardURL,
		Token:            token,
		ExpiresAt:        *inv.ExpiresAt,
	})
	if err == nil && s.Mailer != nil {
		_, err = s.Mailer.Send(ctx, msg)
	}
	if err != nil {
		log.Error("failed to deliver invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}

	return invitationMember(inv), nil
}

// RemoveStaff deactivates an account of the organization and revokes its
// refresh tokens. Managers cannot remove themselves.
func (s *OrganizationService) RemoveStaff(ctx context.Context, p domain.Principal, accountID string) error {
	log := slogx.FromContext(ctx)
	if err := requireManager(p); err != nil {
		return err
	}
	if accountID == p.AccountID {
		return newError(ErrInvalidRequest, "You cannot remove yourself.")
	}
	now := s.Clock.now()

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().Remove(ctx, accountID, p.OrganizationID, now); err != nil {
			return err
		}
		return tx.RefreshTokens().RevokeAllForAccount(ctx, accountID, now)
	})
	switch {
	case errors.Is(err, store.ErrConflict):
		return newError(ErrNotFound, "Staff member not found.")
	case err != nil:
		log.Error("failed to remove staff", slog.Any("error", err))
		return transient(err)
	}

	log.Info("staff removed",
		slog.String("account_id", accountID),
		slog.String("removed_by", p.AccountID),
	)
	return nil
}

// Account returns the caller's account and organization. A removed account
// reads as not found.
func (s *OrganizationService) Account(ctx context.Context, p domain.Principal) (domain.Account, domain.Organization, error) {
	acc, err := s.Store.Accounts().Get(ctx, p.AccountID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Account{}, domain.Organization{}, ErrNotFound
	case err != nil:
		return domain.Account{}, domain.Organization{}, transient(err)
	}
	if !acc.Active() || acc.OrganizationID != p.OrganizationID {
		return domain.Account{}, domain.Organization{}, ErrNotFound
	}

	org, err := loadOrganization(ctx, s.Store, acc.OrganizationID)
	if err != nil {
		return domain.Account{}, domain.Organization{}, err
	}
	return acc, org, nil
}

func (s *OrganizationService) Templates(ctx context.Context, p domain.Principal) ([]domain.ClassTemplate, error) {
	templates, err := s.Store.ClassTemplates().ListByOrganization(ctx, p.OrganizationID)
	if err != nil {
		return nil, transient(err)
	}
	return templates, nil
}

func accountMember(a domain.Account) domain.StaffMember {
	joined := a.CreatedAt
	return domain.StaffMember{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Role:      a.Role,
		Status:    domain.StaffActive,
		InvitedAt: a.CreatedAt,
		JoinedAt:  &joined,
	}
}

func invitationMember(inv domain.Invitation) domain.StaffMember {
	return domain.StaffMember{
		ID:        inv.ID,
		Email:     inv.ContactEmail,
		Role:      inv.Role,
		Status:    domain.StaffPending,
		InvitedAt: inv.CreatedAt,
	}
}
