package partnersdk

import (
	"time"

	"github.com/kidventure/partnerhub/pkg/jwtx"
)

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the error body of every endpoint. The field names follow
// RFC 6749 so token and API errors share one shape.
type ErrorResponse struct {
	// Error is a machine readable code such as "not_found" or "invalid_token"
	Error string `json:"error"`

	// ErrorDescription is a message that can be shown to the user as is
	ErrorDescription string `json:"error_description"`
}

// MFARequiredResponse is returned with 409 by the password grant when the
// account has TOTP enabled.
type MFARequiredResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`

	// MFAToken identifies the pending challenge for the mfa_otp grant
	MFAToken string `json:"mfa_token"`

	// ExpiresIn is the challenge lifetime in seconds
	ExpiresIn int `json:"expires_in"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version,omitempty"`

	// Checks is only set by /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse is the key set served at /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Tokens
// ============================================================================

// TokenResponse is the OAuth2 token endpoint response.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds
	ExpiresIn int `json:"expires_in"`

	// Scope is the space-delimited list of granted scopes
	Scope string `json:"scope"`

	// Role is "staff" or "manager"
	Role Role `json:"role"`
}

type MeResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Role             Role      `json:"role"`
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	MFAEnabled       bool      `json:"mfaEnabled"`
	CreatedAt        time.Time `json:"createdAt"`
}

type TOTPEnrollResponse struct {
	Secret  string `json:"secret"`
	URL     string `json:"otpauthUrl"`
	Issuer  string `json:"issuer"`
	Account string `json:"account"`
}

type TOTPCodeRequest struct {
	Code string `json:"code"`
}

// ============================================================================
// Invitations
// ============================================================================

type VerifyInvitationRequest struct {
	Token string `json:"token"`
}

type VerifyInvitationResponse struct {
	InvitationID     string     `json:"invitationId"`
	ContactEmail     string     `json:"contactEmail"`
	OrganizationName string     `json:"organizationName"`
	Role             Role       `json:"role"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
}

type ClaimInvitationRequest struct {
	InvitationID         string `json:"invitationId,omitempty"`
	Token                string `json:"token"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation,omitempty"`
}

type ClaimInvitationResponse struct {
	AccountID      string `json:"accountId"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	OrganizationID string `json:"organizationId"`
}

// ============================================================================
// Password reset
// ============================================================================

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token                string `json:"token"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation,omitempty"`
}

// ============================================================================
// Check-in
// ============================================================================

type CheckinRequest struct {
	Token string `json:"token"`
}

// CheckinResponse is always returned with 200; Status tells the outcome.
type CheckinResponse struct {
	// Status is "valid", "invalid" or "duplicate"
	Status      string          `json:"status"`
	Message     string          `json:"message"`
	Booking     *CheckinBooking `json:"booking,omitempty"`
	CheckedInAt *time.Time      `json:"checkedInAt,omitempty"`
}

// CheckinBooking never carries full names.
type CheckinBooking struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"sessionId"`
	ClassTitle       string    `json:"classTitle"`
	StartAt          time.Time `json:"startAt"`
	KidNameMasked    string    `json:"kidNameMasked"`
	ParentNameMasked string    `json:"parentNameMasked"`
}

const (
	CheckinValid     = "valid"
	CheckinInvalid   = "invalid"
	CheckinDuplicate = "duplicate"
)

// ============================================================================
// Class sessions
// ============================================================================

type ClassSession struct {
	ID            string    `json:"id"`
	TemplateID    string    `json:"classTemplateId"`
	ClassTitle    string    `json:"classTitle"`
	LocationID    string    `json:"locationId"`
	LocationName  string    `json:"locationName"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	CapacityTotal int       `json:"capacityTotal"`
	CapacityKVP   int       `json:"capacityKvp"`
	Booked        int       `json:"bookedCount"`
	KVPSpotsLeft  int       `json:"kvpSpotsLeft"`
	Status        string    `json:"status"`
}

type SessionQuery struct {
	From       string
	To         string
	LocationID string
	Status     string
}

type CalendarDay struct {
	Date     string         `json:"date"`
	Sessions []ClassSession `json:"sessions"`
}

type Recurrence struct {
	// Type is none, daily, weekly or custom
	Type       string `json:"type"`
	EndDate    string `json:"endDate,omitempty"`
	DaysOfWeek []int  `json:"daysOfWeek,omitempty"`
	Interval   int    `json:"interval,omitempty"`
}

type CreateSessionRequest struct {
	TemplateID    string      `json:"classTemplateId"`
	LocationID    string      `json:"locationId"`
	Date          string      `json:"date"`
	StartTime     string      `json:"startTime"`
	EndTime       string      `json:"endTime"`
	CapacityTotal int         `json:"capacityTotal"`
	CapacityKVP   int         `json:"capacityKvp"`
	Recurrence    *Recurrence `json:"recurrence,omitempty"`
}

// UpdateSessionRequest changes only the fields that are set.
type UpdateSessionRequest struct {
	StartTime     *string `json:"startTime,omitempty"`
	EndTime       *string `json:"endTime,omitempty"`
	CapacityTotal *int    `json:"capacityTotal,omitempty"`
	CapacityKVP   *int    `json:"capacityKvp,omitempty"`
	Status        *string `json:"status,omitempty"`
}

type ClassTemplate struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	AgeMin          *int   `json:"ageMin,omitempty"`
	AgeMax          *int   `json:"ageMax,omitempty"`
	CreditsCost     int    `json:"creditsCost"`
}

// ============================================================================
// Attendance and finance
// ============================================================================

type AttendanceQuery struct {
	DateFrom   string
	DateTo     string
	LocationID string
	TemplateID string
}

type CheckinRecord struct {
	BookingID      string    `json:"bookingId"`
	SessionID      string    `json:"sessionId"`
	ClassTitle     string    `json:"classTitle"`
	LocationName   string    `json:"locationName"`
	SessionStartAt time.Time `json:"sessionStartAt"`
	CheckedInAt    time.Time `json:"checkedInAt"`
	CreditsCost    int       `json:"creditsCost"`
	KidNameMasked  string    `json:"kidNameMasked"`
}

type EarningsLine struct {
	Date          string  `json:"date"`
	SessionID     string  `json:"sessionId"`
	ClassTitle    string  `json:"classTitle"`
	CheckinsCount int     `json:"checkinsCount"`
	Credits       int     `json:"credits"`
	AmountUSD     float64 `json:"amountUsd"`
}

type EarningsResponse struct {
	Period   string         `json:"period"`
	TotalUSD float64        `json:"totalUsd"`
	Lines    []EarningsLine `json:"lines"`
}

type Payout struct {
	ID          string     `json:"id"`
	PeriodStart string     `json:"periodStart"`
	PeriodEnd   string     `json:"periodEnd"`
	AmountUSD   float64    `json:"amountUsd"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

type DisputeRequest struct {
	BookingID string `json:"bookingId"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes,omitempty"`
}

type Dispute struct {
	ID         string     `json:"id"`
	BookingID  string     `json:"bookingId"`
	Reason     string     `json:"reason"`
	Notes      string     `json:"notes,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

// ============================================================================
// Organization and staff
// ============================================================================

type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

type StaffMember struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Role      Role       `json:"role"`
	Status    string     `json:"status"`
	InvitedAt time.Time  `json:"invitedAt"`
	JoinedAt  *time.Time `json:"joinedAt,omitempty"`
}

type OrganizationResponse struct {
	ID                  string        `json:"id"`
	DisplayName         string        `json:"displayName"`
	LegalName           string        `json:"legalName"`
	Timezone            string        `json:"timezone"`
	StripeConnectStatus string        `json:"stripeConnectStatus"`
	StripeConnectURL    *string       `json:"stripeConnectUrl,omitempty"`
	Locations           []Location    `json:"locations"`
	Staff               []StaffMember `json:"staff"`
}

type UpdateOrganizationRequest struct {
	DisplayName string `json:"displayName"`
}

type InviteStaffRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ============================================================================
// Summary and analytics
// ============================================================================

type SummaryResponse struct {
	OrganizationID      string  `json:"organizationId"`
	OrganizationName    string  `json:"organizationName"`
	TodaySessionsCount  int     `json:"todaySessionsCount"`
	MonthCheckinsCount  int     `json:"monthCheckinsCount"`
	EstimatedUSD        float64 `json:"estimatedEarningsUsd"`
	PayoutStatus        string  `json:"payoutStatus"`
	StripeConnectStatus string  `json:"stripeConnectStatus"`
}

type AnalyticsOverview struct {
	TotalSessions         int     `json:"totalSessions"`
	TotalCheckins         int     `json:"totalCheckins"`
	UniqueKids            int     `json:"uniqueKids"`
	TotalCreditsUsed      int     `json:"totalCreditsUsed"`
	EstimatedRevenueUSD   float64 `json:"estimatedRevenue"`
	AvgCheckinsPerSession float64 `json:"avgCheckinsPerSession"`
	KVPUtilizationRate    float64 `json:"kvpUtilizationRate"`
}

type AnalyticsComparison struct {
	SessionsChange float64 `json:"sessionsChange"`
	CheckinsChange float64 `json:"checkinsChange"`
	RevenueChange  float64 `json:"revenueChange"`
}

type ClassPerformance struct {
	TemplateID    string  `json:"classTemplateId"`
	ClassTitle    string  `json:"classTitle"`
	TotalSessions int     `json:"totalSessions"`
	TotalCheckins int     `json:"totalCheckins"`
	AvgAttendance float64 `json:"avgAttendance"`
	RevenueUSD    float64 `json:"revenue"`
}

type LocationPerformance struct {
	LocationID   string  `json:"locationId"`
	LocationName string  `json:"locationName"`
	Sessions     int     `json:"sessions"`
	Checkins     int     `json:"checkins"`
	RevenueUSD   float64 `json:"revenue"`
}

type WeeklyTrend struct {
	WeekStart  string  `json:"week"`
	Sessions   int     `json:"sessions"`
	Checkins   int     `json:"checkins"`
	RevenueUSD float64 `json:"revenue"`
}

type PeakTime struct {
	DayOfWeek   int     `json:"dayOfWeek"`
	Hour        int     `json:"hour"`
	AvgCheckins float64 `json:"avgCheckins"`
}

type AnalyticsResponse struct {
	Period            string                `json:"period"`
	Overview          AnalyticsOverview     `json:"overview"`
	Comparison        AnalyticsComparison   `json:"comparison"`
	TopClasses        []ClassPerformance    `json:"topClasses"`
	LocationBreakdown []LocationPerformance `json:"locationBreakdown"`
	WeeklyTrend       []WeeklyTrend         `json:"weeklyTrend"`
	PeakTimes         []PeakTime            `json:"peakTimes"`
}

// ============================================================================
// Platform
// ============================================================================

type OnboardLocation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type OnboardTemplate struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	AgeMin          *int   `json:"ageMin,omitempty"`
	AgeMax          *int   `json:"ageMax,omitempty"`
	CreditsCost     int    `json:"creditsCost"`
}

type OnboardRequest struct {
	DisplayName      string            `json:"displayName"`
	LegalName        string            `json:"legalName"`
	Timezone         string            `json:"timezone"`
	CreditValueCents int64             `json:"creditValueCents"`
	ManagerEmail     string            `json:"managerEmail"`
	Locations        []OnboardLocation `json:"locations"`
	Templates        []OnboardTemplate `json:"classTemplates"`
}

// OnboardResponse carries the manager's invitation token. It is returned
// only once and is not recoverable.
type OnboardResponse struct {
	OrganizationID  string          `json:"organizationId"`
	Locations       []Location      `json:"locations"`
	Templates       []ClassTemplate `json:"classTemplates"`
	InvitationID    string          `json:"invitationId"`
	InvitationToken string          `json:"invitationToken"`
	ExpiresAt       *time.Time      `json:"expiresAt,omitempty"`
}

type PlatformBookingRequest struct {
	SessionID  string `json:"sessionId"`
	KidID      string `json:"kidId"`
	KidName    string `json:"kidName"`
	ParentName string `json:"parentName"`
}

// PlatformBookingResponse carries the token encoded in the booking QR code.
type PlatformBookingResponse struct {
	BookingID   string `json:"bookingId"`
	Token       string `json:"token"`
	CreditsCost int    `json:"creditsCost"`
}

type PlatformPayoutRequest struct {
	OrganizationID string `json:"organizationId"`
	PeriodStart    string `json:"periodStart"`
	PeriodEnd      string `json:"periodEnd"`
	AmountCents    int64  `json:"amountCents"`
	Status         string `json:"status,omitempty"`
}

// ============================================================================
// List envelopes
// ============================================================================

type SessionsResponse struct {
	Sessions []ClassSession `json:"sessions"`
}

type CalendarResponse struct {
	View string        `json:"view"`
	Days []CalendarDay `json:"days"`
}

type CheckinsResponse struct {
	Checkins []CheckinRecord `json:"checkins"`
}

type PayoutsResponse struct {
	Payouts []Payout `json:"payouts"`
}

type DisputesResponse struct {
	Disputes []Dispute `json:"disputes"`
}

type StaffResponse struct {
	Staff []StaffMember `json:"staff"`
}

type ClassTemplatesResponse struct {
	ClassTemplates []ClassTemplate `json:"classTemplates"`
}
