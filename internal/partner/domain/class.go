package domain

import "time"

type ClassTemplate struct {
	ID              string
	OrganizationID  string
	Title           string
	Description     string // markdown
	DurationMinutes int
	AgeMin          *int
	AgeMax          *int
	CreditsCost     int // credits a booking of this class costs
	CreatedAt       time.Time
}

type SessionStatus string

const (
	SessionOpen     SessionStatus = "open"
	SessionClosed   SessionStatus = "closed"
	SessionCanceled SessionStatus = "canceled"
)

func ParseSessionStatus(s string) (SessionStatus, bool) {
	switch SessionStatus(s) {
	case SessionOpen, SessionClosed, SessionCanceled:
		return SessionStatus(s), true
	}
	return "", false
}

// ClassSession is one scheduled occurrence of a class template.
type ClassSession struct {
	ID             string
	OrganizationID string
	TemplateID     string
	LocationID     string
	StartAt        time.Time // UTC
	EndAt          time.Time // UTC
	CapacityTotal  int
	CapacityKVP    int
	Status         SessionStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SessionView is a session joined with its template, location and booking
// count.
type SessionView struct {
	ClassSession

	ClassTitle   string
	LocationName string
	Booked       int // confirmed bookings
}

// KVPSpotsLeft never goes negative even when bookings exceed capacity.
func (s SessionView) KVPSpotsLeft() int {
	return max(s.CapacityKVP-s.Booked, 0)
}

type RecurrenceType string

const (
	RecurrenceNone   RecurrenceType = "none"
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
	RecurrenceCustom RecurrenceType = "custom"
)

// Recurrence repeats a session from its first date up to and including
// EndDate. DaysOfWeek uses time.Weekday numbering (0 is Sunday).
type Recurrence struct {
	Type       RecurrenceType
	EndDate    string // YYYY-MM-DD, org local
	DaysOfWeek []int
	Interval   int // every N days or weeks; 0 means 1
}

// SessionFilter narrows session listings. From and To are inclusive UTC
// bounds on StartAt.
type SessionFilter struct {
	From       time.Time
	To         time.Time
	LocationID string
	Status     SessionStatus
}

// CalendarDay is one local date of a calendar view.
type CalendarDay struct {
	Date     string // YYYY-MM-DD
	Sessions []SessionView
}
