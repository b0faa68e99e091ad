package partnersdk

// Scopes carried by partner access tokens. Staff get profile, MFA,
// sessions:read, checkins:write and attendance:read; managers get all.
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
