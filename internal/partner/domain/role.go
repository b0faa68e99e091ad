package domain

import "fmt"

// Role is the typed partner role carried by every account and access token.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

// Scopes granted to access tokens.
const (
	ScopeSessionsRead   = "sessions:read"
	ScopeSessionsWrite  = "sessions:write"
	ScopeCheckinsWrite  = "checkins:write"
	ScopeAttendanceRead = "attendance:read"
	ScopeStaffWrite     = "staff:write"
	ScopeFinanceRead    = "finance:read"
	ScopeDisputesWrite  = "disputes:write"
	ScopeOrgWrite       = "org:write"
	ScopeAnalyticsRead  = "analytics:read"
	ScopeProfileRead    = "profile:read"
	ScopeMFAManage      = "mfa:manage"
)

var staffScopes = []string{
	ScopeProfileRead,
	ScopeMFAManage,
	ScopeSessionsRead,
	ScopeCheckinsWrite,
	ScopeAttendanceRead,
}

var managerScopes = append(append([]string{}, staffScopes...),
	ScopeSessionsWrite,
	ScopeStaffWrite,
	ScopeFinanceRead,
	ScopeDisputesWrite,
	ScopeOrgWrite,
	ScopeAnalyticsRead,
)

// ParseRole accepts exactly "staff" or "manager".
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStaff, RoleManager:
		return Role(s), nil
	}
	return "", fmt.Errorf("domain: unknown role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Scopes returns a copy of the scopes the role grants.
func (r Role) Scopes() []string {
	var src []string
	switch r {
	case RoleStaff:
		src = staffScopes
	case RoleManager:
		src = managerScopes
	}
	return append([]string(nil), src...)
}

// Principal is the authenticated caller of a request. It is built once from
// verified access token claims and passed to services explicitly.
type Principal struct {
	AccountID      string
	OrganizationID string
	Role           Role
	Email          string
	SessionID      string
	Scopes         []string
}

func (p Principal) IsManager() bool { return p.Role == RoleManager }
