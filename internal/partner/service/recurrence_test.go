package service

import (
	"testing"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/stretchr/testify/require"
)

func dates(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Format(dateLayout)
	}
	return out
}

func TestExpandRecurrence(t *testing.T) {
	t.Parallel()

	// A Monday.
	first := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("none is a single date", func(t *testing.T) {
		got, err := ExpandRecurrence(first, domain.Recurrence{})
		require.NoError(t, err)
		require.Equal(t, []string{"2026-03-02"}, dates(got))
	})

	t.Run("daily with interval", func(t *testing.T) {
		got, err := ExpandRecurrence(first, domain.Recurrence{Type: domain.RecurrenceDaily, EndDate: "2026-03-08", Interval: 3})
		require.NoError(t, err)
		require.Equal(t, []string{"2026-03-02", "2026-03-05", "2026-03-08"}, dates(got))
	})

	t.Run("weekly includes the end date", func(t *testing.T) {
		got, err := ExpandRecurrence(first, domain.Recurrence{Type: domain.RecurrenceWeekly, EndDate: "2026-03-16"})
		require.NoError(t, err)
		require.Equal(t, []string{"2026-03-02", "2026-03-09", "2026-03-16"}, dates(got))
	})

	t.Run("weeks are seven civil days across daylight saving", func(t *testing.T) {
		got, err := ExpandRecurrence(first, domain.Recurrence{Type: domain.RecurrenceWeekly, EndDate: "2026-03-09"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, 7*24*time.Hour, got[1].Sub(got[0]))
	})

	t.Run("custom skips days before the first date", func(t *testing.T) {
		// Sunday and Wednesday every other week. The Sunday of the first
		// week precedes the first date.
		got, err := ExpandRecurrence(first, domain.Recurrence{
			Type:       domain.RecurrenceCustom,
			EndDate:    "2026-03-18",
			DaysOfWeek: []int{3, 0, 3},
			Interval:   2,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"2026-03-04", "2026-03-15", "2026-03-18"}, dates(got))
	})

	t.Run("invalid input", func(t *testing.T) {
		for name, r := range map[string]domain.Recurrence{
			"missing end":  {Type: domain.RecurrenceDaily},
			"end on first": {Type: domain.RecurrenceDaily, EndDate: "2026-03-02"},
			"no weekdays":  {Type: domain.RecurrenceCustom, EndDate: "2026-03-20"},
			"bad weekday":  {Type: domain.RecurrenceCustom, EndDate: "2026-03-20", DaysOfWeek: []int{7}},
			"unknown type": {Type: "monthly", EndDate: "2026-03-20"},
			"too many":     {Type: domain.RecurrenceDaily, EndDate: "2027-03-03"},
		} {
			_, err := ExpandRecurrence(first, r)
			require.ErrorIs(t, err, ErrInvalidRequest, name)
		}
	})

	t.Run("exactly the maximum", func(t *testing.T) {
		got, err := ExpandRecurrence(first, domain.Recurrence{Type: domain.RecurrenceDaily, EndDate: "2027-03-01"})
		require.NoError(t, err)
		require.Len(t, got, MaxOccurrences-1)

		got, err = ExpandRecurrence(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), domain.Recurrence{Type: domain.RecurrenceDaily, EndDate: "2027-03-01"})
		require.NoError(t, err)
		require.Len(t, got, 366)
	})
}
