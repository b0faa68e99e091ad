package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/store"
)

const DefaultHousekeepingInterval = time.Hour

// HousekeepingService periodically deletes expired refresh tokens, MFA
// sessions and password resets. Invitations are kept forever as the claim audit trail.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Clock    Clock
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService falls back to DefaultHousekeepingInterval for a
// non-positive interval.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs a cleanup immediately and then on every tick until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", slog.Duration("interval", s.Interval))
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes expired rows. Each table is cleaned independently; a
// failure on one does not stop the others.
func (s *HousekeepingService) Cleanup(ctx context.Context) (refreshTokens, mfaSessions, passwordResets int64) {
	now := s.Clock.now()

	refreshTokens, err := s.Store.RefreshTokens().DeleteExpired(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", slog.Any("error", err))
	}

	mfaSessions, err = s.Store.MFASessions().DeleteExpired(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired mfa sessions", slog.Any("error", err))
	}

	passwordResets, err = s.Store.PasswordResets().DeleteExpired(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired password resets", slog.Any("error", err))
	}

	s.Logger.Info("housekeeping cleanup completed",
		slog.Int64("refresh_tokens", refreshTokens),
		slog.Int64("mfa_sessions", mfaSessions),
		slog.Int64("password_resets", passwordResets),
	)
	return refreshTokens, mfaSessions, passwordResets
}
