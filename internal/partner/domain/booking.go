package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

type CheckinState string

const (
	CheckinUnused    CheckinState = "unused"
	CheckinCheckedIn CheckinState = "checked_in"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
)

// Booking is a family's reservation of a KVP spot in a session. The
// checkin state moves from unused to checked_in at most once.
type Booking struct {
	ID           string
	SessionID    string
	TokenHash    string
	KidID        string
	KidName      string
	ParentName   string
	CreditsCost  int
	Status       BookingStatus
	CheckinState CheckinState
	CheckedInAt  *time.Time
	CheckedInBy  *string
	CreatedAt    time.Time
}

// BookingContext is a booking together with the session facts the
// check-in rules need.
type BookingContext struct {
	Booking

	OrganizationID string
	SessionStatus  SessionStatus
	StartAt        time.Time
	EndAt          time.Time
	ClassTitle     string
}

type CheckinStatus string

const (
	CheckinValid     CheckinStatus = "valid"
	CheckinInvalid   CheckinStatus = "invalid"
	CheckinDuplicate CheckinStatus = "duplicate"
)

// CheckinBooking is the masked booking summary shown to the scanner.
type CheckinBooking struct {
	ID               string
	SessionID        string
	ClassTitle       string
	StartAt          time.Time
	KidNameMasked    string
	ParentNameMasked string
}

// CheckinResult is the outcome of a scan. Reason carries the error kind
// behind an invalid or duplicate status.
type CheckinResult struct {
	Status      CheckinStatus
	Message     string
	Booking     *CheckinBooking
	CheckedInAt *time.Time
	Reason      error
}

// CheckinRecord is one row of the attendance report.
type CheckinRecord struct {
	BookingID      string
	SessionID      string
	ClassTitle     string
	TemplateID     string
	LocationID     string
	LocationName   string
	SessionStartAt time.Time
	CheckedInAt    time.Time
	CreditsCost    int
	KidID          string
	KidName        string
}

// AttendanceFilter narrows the attendance report. Zero values match all.
type AttendanceFilter struct {
	From       time.Time
	To         time.Time
	LocationID string
	TemplateID string
}

// MaskName shortens "Emma Smith" to "Emma S." so scanners never display a
// full child or parent name. Single names are returned as is.
func MaskName(full string) string {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	last, _ := utf8.DecodeRuneInString(parts[len(parts)-1])
	return parts[0] + " " + strings.ToUpper(string(last)) + "."
}

// Err returns the error kind behind an invalid or duplicate result, nil for
// a valid one.
func (r CheckinResult) Err() error { return r.Reason }
