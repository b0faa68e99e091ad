package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Authentication method references carried in the amr claim.
const (
	AMRPassword = "pwd"
	AMROTP      = "otp"
	AMRRefresh  = "refresh"
)

// Claims are the access token claims issued to partner staff.
type Claims struct {
	jwt.RegisteredClaims

	// Refresh token family the access token was minted from.
	SID string `json:"sid,omitempty"`

	// Role is "staff" or "manager"; it is resolved once at sign in and
	// never re-read by resource handlers.
	Role string `json:"role,omitempty"`

	// OrgID scopes every query the bearer can make.
	OrgID string `json:"org,omitempty"`

	Scopes []string `json:"scopes,omitempty"`

	// Authentication methods, see the AMR constants.
	AMR []string `json:"amr,omitempty"`

	Email string `json:"email,omitempty"`
}

// AccessParams describe the principal an access token is minted for.
type AccessParams struct {
	Subject  string
	SID      string
	Role     string
	OrgID    string
	Email    string
	Scopes   []string
	AMR      []string
	Issuer   string
	Audience []string
	TTL      time.Duration
}

// NewAccessClaims builds claims valid from now for p.TTL.
func NewAccessClaims(p AccessParams, now time.Time) Claims {
	ttl := p.TTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   p.Subject,
			Audience:  jwt.ClaimStrings(p.Audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SID:    p.SID,
		Role:   p.Role,
		OrgID:  p.OrgID,
		Scopes: p.Scopes,
		AMR:    p.AMR,
		Email:  p.Email,
	}
}

// NewJTI returns a random URL-safe token identifier.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasScope reports whether the claims grant scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ValidateIssuer is a no-op when expected is empty.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience passes when any expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry checks exp and nbf against now, allowing leeway for skew.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
