package domain

import "time"

// TokenPair is what a successful grant returns.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    time.Duration
	Scope        string
	Role         Role
}

// RefreshToken is the stored form of an opaque refresh token. SessionID
// stays constant across rotations of the same sign-in.
type RefreshToken struct {
	ID        string
	AccountID string
	TokenHash string
	SessionID string
	AMR       []string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MFASession is a pending second factor challenge created by a password
// grant on an account with TOTP enabled.
type MFASession struct {
	ID        string // the mfa_token
	AccountID string
	SessionID string
	AMR       []string
	Attempts  int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// MFAEnrollment is returned when TOTP enrolment starts.
type MFAEnrollment struct {
	Secret  string
	URL     string // otpauth:// for QR rendering
	Issuer  string
	Account string
}

// PasswordReset is a single-use password reset link. Only the fingerprint
// of the emailed token is stored.
type PasswordReset struct {
	ID        string
	AccountID string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Usable reports whether the link can still set a password at now. The
// expiry instant itself is already expired.
func (r PasswordReset) Usable(now time.Time) bool {
	return r.UsedAt == nil && now.Before(r.ExpiresAt)
}
