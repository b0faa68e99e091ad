package service

import (
	"slices"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
)

// MaxOccurrences bounds how many sessions one recurrence may create.
const MaxOccurrences = 366

const dateLayout = "2006-01-02"

// ExpandRecurrence returns the dates a session repeats on, first included.
// Dates are civil dates held as midnight UTC so that day arithmetic is not
// affected by daylight saving changes.
func ExpandRecurrence(first time.Time, r domain.Recurrence) ([]time.Time, error) {
	first = civil(first)

	if r.Type == "" || r.Type == domain.RecurrenceNone {
		return []time.Time{first}, nil
	}

	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return nil, newError(ErrInvalidRequest, "Recurring sessions need an end date.")
	}
	if !end.After(first) {
		return nil, newError(ErrInvalidRequest, "The recurrence end date must be after the first session.")
	}

	interval := max(r.Interval, 1)

	var out []time.Time
	add := func(d time.Time) error {
		if len(out) == MaxOccurrences {
			return newError(ErrInvalidRequest, "A recurrence can create at most 366 sessions.")
		}
		out = append(out, d)
		return nil
	}

	switch r.Type {
	case domain.RecurrenceDaily, domain.RecurrenceWeekly:
		step := interval
		if r.Type == domain.RecurrenceWeekly {
			step *= 7
		}
		for d := first; !d.After(end); d = d.AddDate(0, 0, step) {
			if err := add(d); err != nil {
				return nil, err
			}
		}

	case domain.RecurrenceCustom:
		days, err := weekdays(r.DaysOfWeek)
		if err != nil {
			return nil, err
		}
		weekStart := first.AddDate(0, 0, -int(first.Weekday()))
		for w := weekStart; !w.After(end); w = w.AddDate(0, 0, 7*interval) {
			for _, wd := range days {
				d := w.AddDate(0, 0, wd)
				if d.Before(first) || d.After(end) {
					continue
				}
				if err := add(d); err != nil {
					return nil, err
				}
			}
		}

	default:
		return nil, newError(ErrInvalidRequest, "Unknown recurrence type.")
	}

	return out, nil
}

// weekdays validates, sorts and dedupes days of week.
func weekdays(in []int) ([]int, error) {
	if len(in) == 0 {
		return nil, newError(ErrInvalidRequest, "Pick at least one day of the week.")
	}
	out := make([]int, 0, len(in))
	for _, d := range in {
		if d < 0 || d > 6 {
			return nil, newError(ErrInvalidRequest, "Days of the week run from 0 (Sunday) to 6 (Saturday).")
		}
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out, nil
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// at places the civil date d at hh:mm wall clock time in loc.
func at(d time.Time, clock time.Time, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, clock.Hour(), clock.Minute(), 0, 0, loc)
}
