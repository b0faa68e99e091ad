package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/cryptox"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

const (
	DefaultCheckinEarlyWindow = 30 * time.Minute
	DefaultCheckinLateWindow  = 15 * time.Minute
)

const (
	msgCheckinValid     = "Check-in successful!"
	msgCheckinUnknown   = "This booking code is invalid or has expired."
	msgCheckinCanceled  = "This booking has been canceled."
	msgCheckinTooEarly  = "Check-in has not opened yet for this class."
	msgCheckinTooLate   = "This booking code has expired. The check-in window has closed."
	msgCheckinDuplicate = "This booking has already been checked in."
)

type CheckinService struct {
	Store store.Store
	Clock Clock

	// Check-in is accepted from Early before to Late after the session
	// start, both ends inclusive. Zero values use the defaults.
	Early time.Duration
	Late  time.Duration
}

// CheckIn validates a scanned booking token for the caller's organization
// and marks the booking checked in. Only a valid result changes state.
// Store failures are returned as errors; every other outcome is a result.
func (s *CheckinService) CheckIn(ctx context.Context, p domain.Principal, token string) (domain.CheckinResult, error) {
	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	if strings.TrimSpace(token) == "" {
		return invalidResult(ErrInvalidToken, msgCheckinUnknown), nil
	}

	bc, err := s.Store.Bookings().GetByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("check-in with unknown booking token")
			return invalidResult(ErrNotFound, msgCheckinUnknown), nil
		}
		log.Error("failed to fetch booking", slog.Any("error", err))
		return domain.CheckinResult{}, transient(err)
	}

	// Another organization's booking is reported exactly like an unknown one.
	if bc.OrganizationID != p.OrganizationID {
		log.Warn("check-in for booking of another organization",
			slog.String("booking_id", bc.ID),
		)
		return invalidResult(ErrNotFound, msgCheckinUnknown), nil
	}

	if bc.Status == domain.BookingCanceled || bc.SessionStatus == domain.SessionCanceled {
		log.Info("check-in for canceled booking", slog.String("booking_id", bc.ID))
		return s.result(domain.CheckinInvalid, ErrCanceled, msgCheckinCanceled, bc, nil), nil
	}

	opens, closes := s.window(bc.StartAt)
	if now.Before(opens) {
		return s.result(domain.CheckinInvalid, ErrOutOfWindow, msgCheckinTooEarly, bc, nil), nil
	}
	if now.After(closes) {
		return s.result(domain.CheckinInvalid, ErrOutOfWindow, msgCheckinTooLate, bc, nil), nil
	}

	if bc.CheckinState == domain.CheckinCheckedIn {
		return s.result(domain.CheckinDuplicate, ErrDuplicate, msgCheckinDuplicate, bc, bc.CheckedInAt), nil
	}

	err = s.Store.Bookings().MarkCheckedIn(ctx, bc.ID, p.AccountID, now)
	if errors.Is(err, store.ErrConflict) {
		// A concurrent scan won; report what it recorded.
		current, err := s.Store.Bookings().Get(ctx, bc.ID)
		if err != nil {
			log.Error("failed to re-read booking", slog.Any("error", err))
			return domain.CheckinResult{}, transient(err)
		}
		return s.result(domain.CheckinDuplicate, ErrDuplicate, msgCheckinDuplicate, current, current.CheckedInAt), nil
	}
	if err != nil {
		log.Error("failed to mark booking checked in",
			slog.String("booking_id", bc.ID),
			slog.Any("error", err),
		)
		return domain.CheckinResult{}, transient(err)
	}

	log.Info("booking checked in",
		slog.String("booking_id", bc.ID),
		slog.String("session_id", bc.SessionID),
	)
	return s.result(domain.CheckinValid, nil, msgCheckinValid, bc, &now), nil
}

func (s *CheckinService) window(start time.Time) (opens, closes time.Time) {
	early, late := s.Early, s.Late
	if early <= 0 {
		early = DefaultCheckinEarlyWindow
	}
	if late <= 0 {
		late = DefaultCheckinLateWindow
	}
	return start.Add(-early), start.Add(late)
}

func (s *CheckinService) result(
	status domain.CheckinStatus,
	reason error,
	msg string,
	bc domain.BookingContext,
	checkedInAt *time.Time,
) domain.CheckinResult {
	return domain.CheckinResult{
		Status:  status,
		Message: msg,
		Booking: &domain.CheckinBooking{
			ID:               bc.ID,
			SessionID:        bc.SessionID,
			ClassTitle:       bc.ClassTitle,
			StartAt:          bc.StartAt,
			KidNameMasked:    domain.MaskName(bc.KidName),
			ParentNameMasked: domain.MaskName(bc.ParentName),
		},
		CheckedInAt: checkedInAt,
		Reason:      reason,
	}
}

// invalidResult reveals nothing about the booking.
func invalidResult(reason error, msg string) domain.CheckinResult {
	return domain.CheckinResult{Status: domain.CheckinInvalid, Message: msg, Reason: reason}
}
