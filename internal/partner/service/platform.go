package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

var (
	ErrPlatformDisabled     = errors.New("platform api not enabled")
	ErrPlatformUnauthorized = errors.New("invalid platform token")
)

// PlatformService is the surface the KidVenture platform uses to onboard
// partners and push bookings. It is only enabled when Token is set.
type PlatformService struct {
	Store       store.Store
	Clock       Clock
	Token       string
	Invitations *InvitationService
}

type OnboardRequest struct {
	DisplayName      string
	LegalName        string
	Timezone         string
	CreditValueCents int64
	ManagerEmail     string
	Locations        []OnboardLocation
	Templates        []OnboardTemplate
}

type OnboardLocation struct {
	Name    string
	Address string
}

type OnboardTemplate struct {
	Title           string
	Description     string
	DurationMinutes int
	AgeMin          *int
	AgeMax          *int
	CreditsCost     int
}

// OnboardResult carries the manager's raw invitation token; it is not
// stored anywhere and must be delivered by the caller.
type OnboardResult struct {
	Organization    domain.Organization
	Locations       []domain.Location
	Templates       []domain.ClassTemplate
	Invitation      domain.Invitation
	InvitationToken string
}

type BookingRequest struct {
	SessionID  string
	KidID      string
	KidName    string
	ParentName string
}

type PayoutRequest struct {
	OrganizationID string
	PeriodStart    string
	PeriodEnd      string
	AmountCents    int64
	Status         string
}

// Enabled reports whether a platform token is configured.
func (s *PlatformService) Enabled() bool { return s.Token != "" }

func (s *PlatformService) Authorize(ctx context.Context, token string) error {
	if !s.Enabled() {
		return ErrPlatformDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		slogx.FromContext(ctx).Warn("unauthorized platform request")
		return ErrPlatformUnauthorized
	}
	return nil
}

// Onboard creates an organization with its locations and class templates,
// and mints the invitation of its first manager, all in one transaction.
func (s *PlatformService) Onboard(ctx context.Context, token string, req OnboardRequest) (OnboardResult, error) {
	log := slogx.FromContext(ctx)
	if err := s.Authorize(ctx, token); err != nil {
		return OnboardResult{}, err
	}
	now := s.Clock.now()

	// 1. Validate
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return OnboardResult{}, newError(ErrInvalidRequest, "Display name is required.")
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil || req.Timezone == "" {
		return OnboardResult{}, newError(ErrInvalidRequest, "Unknown time zone.")
	}
	if req.CreditValueCents <= 0 {
		return OnboardResult{}, newError(ErrInvalidRequest, "Credit value must be positive.")
	}
	for _, t := range req.Templates {
		if strings.TrimSpace(t.Title) == "" || t.DurationMinutes <= 0 || t.CreditsCost <= 0 {
			return OnboardResult{}, newError(ErrInvalidRequest, "Class templates need a title, a duration and a credit cost.")
		}
	}

	res := OnboardResult{
		Organization: domain.Organization{
			ID:                  idx.NewAt(now).String(),
			DisplayName:         name,
			LegalName:           strings.TrimSpace(req.LegalName),
			Timezone:            req.Timezone,
			CreditValueCents:    req.CreditValueCents,
			StripeConnectStatus: domain.StripeNotStarted,
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}
	for _, l := range req.Locations {
		res.Locations = append(res.Locations, domain.Location{
			ID:             idx.NewAt(now).String(),
			OrganizationID: res.Organization.ID,
			Name:           strings.TrimSpace(l.Name),
			Address:        strings.TrimSpace(l.Address),
			Active:         true,
			CreatedAt:      now,
		})
	}
	for _, t := range req.Templates {
		res.Templates = append(res.Templates, domain.ClassTemplate{
			ID:              idx.NewAt(now).String(),
			OrganizationID:  res.Organization.ID,
			Title:           strings.TrimSpace(t.Title),
			Description:     t.Description,
			DurationMinutes: t.DurationMinutes,
			AgeMin:          t.AgeMin,
			AgeMax:          t.AgeMax,
			CreditsCost:     t.CreditsCost,
			CreatedAt:       now,
		})
	}

	// 2. Insert everything, the manager invitation last
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organizations().Create(ctx, res.Organization); err != nil {
			return transient(err)
		}
		for _, l := range res.Locations {
			if err := tx.Locations().Create(ctx, l); err != nil {
				return transient(err)
			}
		}
		for _, t := range res.Templates {
			if err := tx.ClassTemplates().Create(ctx, t); err != nil {
				return transient(err)
			}
		}

		var err error
		res.Invitation, res.InvitationToken, err = s.Invitations.Mint(ctx, tx, res.Organization.ID, req.ManagerEmail, domain.RoleManager, nil)
		return err
	})
	if err != nil {
		log.Warn("onboarding failed", slog.Any("error", err))
		if !isServiceError(err) {
			err = transient(err)
		}
		return OnboardResult{}, err
	}

	log.Info("organization onboarded",
		slog.String("organization_id", res.Organization.ID),
		slog.Int("locations", len(res.Locations)),
		slog.Int("templates", len(res.Templates)),
	)
	return res, nil
}

// CreateBooking reserves a KVP spot in a session and returns the booking
// with the raw token encoded in the family's QR code.
func (s *PlatformService) CreateBooking(ctx context.Context, token string, req BookingRequest) (domain.Booking, string, error) {
	log := slogx.FromContext(ctx)
	if err := s.Authorize(ctx, token); err != nil {
		return domain.Booking{}, "", err
	}
	now := s.Clock.now()

	if strings.TrimSpace(req.KidName) == "" || strings.TrimSpace(req.KidID) == "" {
		return domain.Booking{}, "", newError(ErrInvalidRequest, "Kid id and name are required.")
	}

	var (
		b   domain.Booking
		raw string
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Concurrent bookings of the session queue here, so the spot count
		// below stays true until the insert commits.
		err := tx.ClassSessions().Lock(ctx, req.SessionID)
		if errors.Is(err, store.ErrNotFound) {
			return newError(ErrNotFound, "Session not found.")
		}
		if err != nil {
			return transient(err)
		}
		sv, err := tx.ClassSessions().Get(ctx, req.SessionID)
		if err != nil {
			return transient(err)
		}
		if sv.Status != domain.SessionOpen || !sv.StartAt.After(now) {
			return newError(ErrInvalidRequest, "The session is not open for booking.")
		}
		if sv.KVPSpotsLeft() == 0 {
			return newError(ErrInvalidRequest, "No KVP spots left in this session.")
		}
		tpl, err := tx.ClassTemplates().Get(ctx, sv.TemplateID)
		if err != nil {
			return transient(err)
		}

		raw, err = cryptox.GenerateToken(cryptox.TokenSize128)
		if err != nil {
			return err
		}
		b = domain.Booking{
			ID:           idx.NewAt(now).String(),
			SessionID:    sv.ID,
			TokenHash:    cryptox.FingerprintToken(raw),
			KidID:        strings.TrimSpace(req.KidID),
			KidName:      strings.TrimSpace(req.KidName),
			ParentName:   strings.TrimSpace(req.ParentName),
			CreditsCost:  tpl.CreditsCost,
			Status:       domain.BookingConfirmed,
			CheckinState: domain.CheckinUnused,
			CreatedAt:    now,
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return transient(err)
		}
		return nil
	})
	if err != nil {
		if !isServiceError(err) {
			err = transient(err)
		}
		return domain.Booking{}, "", err
	}

	log.Info("booking created",
		slog.String("booking_id", b.ID),
		slog.String("session_id", b.SessionID),
	)
	return b, raw, nil
}

// RecordPayout stores a settlement batch computed by the finance pipeline.
func (s *PlatformService) RecordPayout(ctx context.Context, token string, req PayoutRequest) (domain.Payout, error) {
	if err := s.Authorize(ctx, token); err != nil {
		return domain.Payout{}, err
	}
	now := s.Clock.now()

	start, errStart := time.Parse(dateLayout, req.PeriodStart)
	end, errEnd := time.Parse(dateLayout, req.PeriodEnd)
	if errStart != nil || errEnd != nil || end.Before(start) {
		return domain.Payout{}, newError(ErrInvalidRequest, "Payout periods are YYYY-MM-DD dates, start before end.")
	}
	status := domain.PayoutStatus(req.Status)
	switch status {
	case "":
		status = domain.PayoutPending
	case domain.PayoutPending, domain.PayoutProcessing, domain.PayoutPaid, domain.PayoutHeld:
	default:
		return domain.Payout{}, newError(ErrInvalidRequest, "Unknown payout status.")
	}
	if _, err := loadOrganization(ctx, s.Store, req.OrganizationID); err != nil {
		return domain.Payout{}, err
	}

	p := domain.Payout{
		ID:             idx.NewAt(now).String(),
		OrganizationID: req.OrganizationID,
		PeriodStart:    req.PeriodStart,
		PeriodEnd:      req.PeriodEnd,
		AmountCents:    req.AmountCents,
		Status:         status,
		CreatedAt:      now,
	}
	if status == domain.PayoutPaid {
		p.PaidAt = &now
	}
	if err := s.Store.Payouts().Create(ctx, p); err != nil {
		return domain.Payout{}, transient(err)
	}
	return p, nil
}
