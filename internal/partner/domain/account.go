package domain

import "time"

type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountRemoved AccountStatus = "removed"
)

// Account is a partner staff login. It only ever comes into existence by
// claiming an invitation.
type Account struct {
	ID             string
	OrganizationID string
	Email          string // lower-cased, unique
	FirstName      string
	LastName       string
	PasswordHash   string // argon2id PHC string
	Role           Role
	Status         AccountStatus
	MFASecret      *string    // base32 TOTP secret, set on enrol
	MFAEnabledAt   *time.Time // nil until the first code is verified
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (a Account) MFAEnabled() bool { return a.MFAEnabledAt != nil }

func (a Account) Active() bool { return a.Status == AccountActive }
