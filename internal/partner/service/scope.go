package service

import (
	"context"
	"errors"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/store"
)

// inTx runs fn in a transaction of st, or directly when st already is one.
func inTx(ctx context.Context, st store.Store, fn func(tx store.Tx) error) error {
	if tx, ok := st.(store.Tx); ok {
		return fn(tx)
	}
	return st.WithTx(ctx, fn)
}

func requireManager(p domain.Principal) error {
	if !p.IsManager() {
		return ErrForbidden
	}
	return nil
}

func loadOrganization(ctx context.Context, st store.Store, id string) (domain.Organization, error) {
	org, err := st.Organizations().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, ErrNotFound
		}
		return domain.Organization{}, transient(err)
	}
	return org, nil
}

// dayRange converts inclusive local dates to a UTC [from, to] instant range.
// Empty strings leave that side open.
func dayRange(from, to string, loc *time.Location) (time.Time, time.Time, error) {
	var start, end time.Time
	if from != "" {
		d, err := time.ParseInLocation(dateLayout, from, loc)
		if err != nil {
			return start, end, newError(ErrInvalidRequest, "Dates use the YYYY-MM-DD format.")
		}
		start = d.UTC()
	}
	if to != "" {
		d, err := time.ParseInLocation(dateLayout, to, loc)
		if err != nil {
			return start, end, newError(ErrInvalidRequest, "Dates use the YYYY-MM-DD format.")
		}
		end = d.AddDate(0, 0, 1).Add(-time.Nanosecond).UTC()
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return start, end, newError(ErrInvalidRequest, "The start date must not be after the end date.")
	}
	return start, end, nil
}

// monthRange returns the UTC bounds of period (YYYY-MM) in loc and the
// month's first day.
func monthRange(period string, loc *time.Location) (first, start, end time.Time, err error) {
	first, err = time.ParseInLocation("2006-01", period, loc)
	if err != nil {
		return first, start, end, newError(ErrInvalidRequest, "Periods use the YYYY-MM format.")
	}
	return first, first.UTC(), first.AddDate(0, 1, 0).Add(-time.Nanosecond).UTC(), nil
}
