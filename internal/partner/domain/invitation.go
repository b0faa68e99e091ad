package domain

import "time"

// Invitation binds a single-use token to the email a new account must use.
// Invitations are never deleted; a claimed row is the audit record of who
// claimed it and when.
type Invitation struct {
	ID                 string
	OrganizationID     string
	TokenHash          string // cryptox.FingerprintToken of the token
	ContactEmail       string
	Role               Role
	ClaimedByAccountID *string
	ClaimedAt          *time.Time
	ExpiresAt          *time.Time // nil never expires
	CreatedBy          *string    // nil when seeded by the platform
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (i Invitation) Claimed() bool { return i.ClaimedByAccountID != nil }

// Expired reports whether the invitation is past its expiry at now. The
// expiry instant itself is already expired.
func (i Invitation) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}

// InvitationDetails is what verifying a token reveals to the signup page.
type InvitationDetails struct {
	InvitationID     string
	ContactEmail     string
	OrganizationName string
	Role             Role
	ExpiresAt        *time.Time
}
