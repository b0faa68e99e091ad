package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/idx"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

const timeLayout = "15:04"

type SessionService struct {
	Store store.Store
	Clock Clock
}

// SessionQuery filters a listing. Dates are inclusive and local to the
// organization.
type SessionQuery struct {
	From       string
	To         string
	LocationID string
	Status     string
}

type CreateSessionRequest struct {
	TemplateID    string
	LocationID    string
	Date          string // YYYY-MM-DD, organization local
	StartTime     string // HH:mm
	EndTime       string // HH:mm
	CapacityTotal int
	CapacityKVP   int
	Recurrence    *domain.Recurrence
}

// UpdateSessionRequest changes the fields that are set.
type UpdateSessionRequest struct {
	StartTime     *string
	EndTime       *string
	CapacityTotal *int
	CapacityKVP   *int
	Status        *string
}

func (s *SessionService) List(ctx context.Context, p domain.Principal, q SessionQuery) ([]domain.SessionView, error) {
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return nil, err
	}

	from, to, err := dayRange(q.From, q.To, org.Location())
	if err != nil {
		return nil, err
	}
	f := domain.SessionFilter{From: from, To: to, LocationID: q.LocationID}
	if q.Status != "" {
		st, ok := domain.ParseSessionStatus(q.Status)
		if !ok {
			return nil, newError(ErrInvalidRequest, "Unknown session status.")
		}
		f.Status = st
	}

	sessions, err := s.Store.ClassSessions().List(ctx, org.ID, f)
	if err != nil {
		return nil, transient(err)
	}
	return sessions, nil
}

func (s *SessionService) Get(ctx context.Context, p domain.Principal, id string) (domain.SessionView, error) {
	v, err := s.Store.ClassSessions().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.SessionView{}, ErrNotFound
		}
		return domain.SessionView{}, transient(err)
	}
	if v.OrganizationID != p.OrganizationID {
		return domain.SessionView{}, ErrNotFound
	}
	return v, nil
}

// Calendar buckets sessions by local date. A week view starts on the Sunday
// on or before date; a month view covers date's calendar month. Every day
// of the range is present, empty or not.
func (s *SessionService) Calendar(ctx context.Context, p domain.Principal, view, date string) ([]domain.CalendarDay, error) {
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return nil, err
	}
	loc := org.Location()

	anchor := civil(s.Clock.now().In(loc))
	if date != "" {
		if anchor, err = time.Parse(dateLayout, date); err != nil {
			return nil, newError(ErrInvalidRequest, "Dates use the YYYY-MM-DD format.")
		}
	}

	var first, last time.Time
	switch view {
	case "", "week":
		first = anchor.AddDate(0, 0, -int(anchor.Weekday()))
		last = first.AddDate(0, 0, 6)
	case "month":
		first = anchor.AddDate(0, 0, 1-anchor.Day())
		last = first.AddDate(0, 1, -1)
	default:
		return nil, newError(ErrInvalidRequest, "The calendar view is week or month.")
	}

	from, to, err := dayRange(first.Format(dateLayout), last.Format(dateLayout), loc)
	if err != nil {
		return nil, err
	}
	sessions, err := s.Store.ClassSessions().List(ctx, org.ID, domain.SessionFilter{From: from, To: to})
	if err != nil {
		return nil, transient(err)
	}

	return bucketByDay(sessions, first, last, loc), nil
}

func bucketByDay(sessions []domain.SessionView, first, last time.Time, loc *time.Location) []domain.CalendarDay {
	var days []domain.CalendarDay
	index := map[string]int{}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		index[key] = len(days)
		days = append(days, domain.CalendarDay{Date: key, Sessions: []domain.SessionView{}})
	}
	for _, sv := range sessions {
		if i, ok := index[sv.StartAt.In(loc).Format(dateLayout)]; ok {
			days[i].Sessions = append(days[i].Sessions, sv)
		}
	}
	return days
}

// Create schedules a session, or every occurrence of its recurrence, in one
// transaction.
func (s *SessionService) Create(ctx context.Context, p domain.Principal, req CreateSessionRequest) ([]domain.ClassSession, error) {
	log := slogx.FromContext(ctx)
	if err := requireManager(p); err != nil {
		return nil, err
	}
	now := s.Clock.now()

	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return nil, err
	}

	// 1. Validate times and capacities
	first, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, newError(ErrInvalidRequest, "Dates use the YYYY-MM-DD format.")
	}
	startClock, endClock, err := parseTimes(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := validateCapacity(req.CapacityTotal, req.CapacityKVP); err != nil {
		return nil, err
	}

	// 2. Template and location must belong to the organization
	if err := s.checkOwnership(ctx, org.ID, req.TemplateID, req.LocationID); err != nil {
		return nil, err
	}

	// 3. Expand the recurrence
	var rec domain.Recurrence
	if req.Recurrence != nil {
		rec = *req.Recurrence
	}
	dates, err := ExpandRecurrence(first, rec)
	if err != nil {
		return nil, err
	}

	loc := org.Location()
	sessions := make([]domain.ClassSession, 0, len(dates))
	for _, d := range dates {
		sessions = append(sessions, domain.ClassSession{
			ID:             idx.NewAt(now).String(),
			OrganizationID: org.ID,
			TemplateID:     req.TemplateID,
			LocationID:     req.LocationID,
			StartAt:        at(d, startClock, loc).UTC(),
			EndAt:          at(d, endClock, loc).UTC(),
			CapacityTotal:  req.CapacityTotal,
			CapacityKVP:    req.CapacityKVP,
			Status:         domain.SessionOpen,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	// 4. Insert all occurrences atomically
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, cs := range sessions {
			if err := tx.ClassSessions().Create(ctx, cs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create sessions", slog.Any("error", err))
		return nil, transient(err)
	}

	log.Info("sessions created",
		slog.String("template_id", req.TemplateID),
		slog.Int("count", len(sessions)),
		slog.String("recurrence", string(rec.Type)),
	)
	return sessions, nil
}

var errCanceledEdit = newError(ErrInvalidRequest, "Canceled sessions cannot be edited.")

func (s *SessionService) Update(ctx context.Context, p domain.Principal, id string, req UpdateSessionRequest) (domain.SessionView, error) {
	if err := requireManager(p); err != nil {
		return domain.SessionView{}, err
	}
	current, err := s.Get(ctx, p, id)
	if err != nil {
		return domain.SessionView{}, err
	}
	org, err := loadOrganization(ctx, s.Store, p.OrganizationID)
	if err != nil {
		return domain.SessionView{}, err
	}
	loc := org.Location()

	cs := current.ClassSession
	if current.Status == domain.SessionCanceled {
		return domain.SessionView{}, errCanceledEdit
	}

	// Times keep the session's local date.
	day := civil(cs.StartAt.In(loc))
	startClock, endClock := cs.StartAt.In(loc), cs.EndAt.In(loc)
	if req.StartTime != nil || req.EndTime != nil {
		startStr, endStr := startClock.Format(timeLayout), endClock.Format(timeLayout)
		if req.StartTime != nil {
			startStr = *req.StartTime
		}
		if req.EndTime != nil {
			endStr = *req.EndTime
		}
		if startClock, endClock, err = parseTimes(startStr, endStr); err != nil {
			return domain.SessionView{}, err
		}
		cs.StartAt = at(day, startClock, loc).UTC()
		cs.EndAt = at(day, endClock, loc).UTC()
	}

	if req.CapacityTotal != nil {
		cs.CapacityTotal = *req.CapacityTotal
	}
	if req.CapacityKVP != nil {
		cs.CapacityKVP = *req.CapacityKVP
	}
	if err := validateCapacity(cs.CapacityTotal, cs.CapacityKVP); err != nil {
		return domain.SessionView{}, err
	}

	if req.Status != nil {
		st, ok := domain.ParseSessionStatus(*req.Status)
		if !ok || st == domain.SessionCanceled {
			return domain.SessionView{}, newError(ErrInvalidRequest, "Status must be open or closed.")
		}
		cs.Status = st
	}

	cs.UpdatedAt = s.Clock.now()
	err = s.Store.ClassSessions().Update(ctx, cs)
	if errors.Is(err, store.ErrConflict) {
		// Canceled after the read above.
		return domain.SessionView{}, errCanceledEdit
	}
	if err != nil {
		return domain.SessionView{}, transient(err)
	}
	return s.Get(ctx, p, id)
}

// Close stops new bookings. Only an open session can be closed.
func (s *SessionService) Close(ctx context.Context, p domain.Principal, id string) (domain.SessionView, error) {
	return s.transition(ctx, p, id, domain.SessionClosed, []domain.SessionStatus{domain.SessionOpen},
		"Only open sessions can be closed.")
}

// Cancel cancels an open or closed session; its bookings can no longer be
// checked in.
func (s *SessionService) Cancel(ctx context.Context, p domain.Principal, id string) (domain.SessionView, error) {
	return s.transition(ctx, p, id, domain.SessionCanceled,
		[]domain.SessionStatus{domain.SessionOpen, domain.SessionClosed},
		"The session is already canceled.")
}

func (s *SessionService) transition(
	ctx context.Context,
	p domain.Principal,
	id string,
	to domain.SessionStatus,
	from []domain.SessionStatus,
	conflictMsg string,
) (domain.SessionView, error) {
	if err := requireManager(p); err != nil {
		return domain.SessionView{}, err
	}
	if _, err := s.Get(ctx, p, id); err != nil {
		return domain.SessionView{}, err
	}

	err := s.Store.ClassSessions().SetStatus(ctx, id, to, from, s.Clock.now())
	if errors.Is(err, store.ErrConflict) {
		return domain.SessionView{}, newError(ErrInvalidRequest, conflictMsg)
	}
	if err != nil {
		return domain.SessionView{}, transient(err)
	}

	slogx.FromContext(ctx).Info("session status changed",
		slog.String("session_id", id),
		slog.String("status", string(to)),
	)
	return s.Get(ctx, p, id)
}

func (s *SessionService) checkOwnership(ctx context.Context, orgID, templateID, locationID string) error {
	tpl, err := s.Store.ClassTemplates().Get(ctx, templateID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && tpl.OrganizationID != orgID) {
		return newError(ErrInvalidRequest, "Unknown class template.")
	}
	if err != nil {
		return transient(err)
	}

	loc, err := s.Store.Locations().Get(ctx, locationID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && (loc.OrganizationID != orgID || !loc.Active)) {
		return newError(ErrInvalidRequest, "Unknown location.")
	}
	if err != nil {
		return transient(err)
	}
	return nil
}

func parseTimes(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(timeLayout, start)
	if err != nil {
		return s, s, newError(ErrInvalidRequest, "Times use the HH:mm format.")
	}
	e, err := time.Parse(timeLayout, end)
	if err != nil {
		return s, e, newError(ErrInvalidRequest, "Times use the HH:mm format.")
	}
	if !e.After(s) {
		return s, e, newError(ErrInvalidRequest, "The end time must be after the start time.")
	}
	return s, e, nil
}

func validateCapacity(total, kvp int) error {
	if total < 1 {
		return newError(ErrInvalidRequest, "Total capacity must be at least 1.")
	}
	if kvp < 0 || kvp > total {
		return newError(ErrInvalidRequest, "KVP spots must be between 0 and the total capacity.")
	}
	return nil
}
