package domain

import "time"

type StripeConnectStatus string

const (
	StripeConnected           StripeConnectStatus = "connected"
	StripePendingVerification StripeConnectStatus = "pending_verification"
	StripeActionNeeded        StripeConnectStatus = "action_needed"
	StripeNotStarted          StripeConnectStatus = "not_started"
)

type Organization struct {
	ID                  string
	DisplayName         string
	LegalName           string
	Timezone            string // IANA name, sessions are entered in this zone
	CreditValueCents    int64  // payout per credit spent by a booking
	StripeConnectStatus StripeConnectStatus
	StripeConnectURL    *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Location loads the organization's time zone, falling back to UTC for an
// unknown name.
func (o Organization) Location() *time.Location {
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type Location struct {
	ID             string
	OrganizationID string
	Name           string
	Address        string
	Active         bool
	CreatedAt      time.Time
}

type StaffStatus string

const (
	StaffPending StaffStatus = "pending"
	StaffActive  StaffStatus = "active"
	StaffRemoved StaffStatus = "removed"
)

// StaffMember merges accounts and outstanding invitations into the roster
// shown on the settings page. Pending members carry the invitation id.
type StaffMember struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      Role
	Status    StaffStatus
	InvitedAt time.Time
	JoinedAt  *time.Time
}

// OrganizationProfile is the settings view of an organization.
type OrganizationProfile struct {
	Organization Organization
	Locations    []Location
	Staff        []StaffMember
}
