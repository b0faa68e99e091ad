package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/internal/partner/store"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/jwtx"
	"github.com/kidventure/partnerhub/pkg/slogx"

	_ "github.com/kidventure/partnerhub/api/partner" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	TokenService        *service.TokenService
	InvitationService   *service.InvitationService
	PasswordService     *service.PasswordService
	CheckinService      *service.CheckinService
	AttendanceService   *service.AttendanceService
	SessionService      *service.SessionService
	OrganizationService *service.OrganizationService
	FinanceService      *service.FinanceService
	AnalyticsService    *service.AnalyticsService
	MFAService          *service.MFAService
	PlatformService     *service.PlatformService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvitations()
	r.registerCheckins()
	r.registerSessions()
	r.registerOrganization()
	r.registerFinance()
	r.registerMFA()
	r.registerPlatform()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			KidVenture Pass Partner Hub API
//	@version		0.1.0
//	@description	Partner-facing API for KidVenture Pass studios: invitation claiming, check-in validation,
//	@description	class scheduling, attendance, earnings and analytics.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs and can be verified using the JWKS endpoint.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with token verification, principal resolution, a scope
// check and a per-account rate limit.
func (r *Router) secured(h http.HandlerFunc, scope string, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		PrincipalMiddleware(),
		httpx.RequireAnyScope(scope),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	// Password attempts are limited per IP and email to slow credential stuffing.
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(&TokenHandler{TokenService: r.TokenService},
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/auth/revoke",
		httpx.Chain(&RevokeHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	pw := &PasswordHandler{PasswordService: r.PasswordService}
	r.Mux.Handle("POST /v1/auth/password/forgot",
		httpx.Chain(http.HandlerFunc(pw.HandleForgot), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /v1/auth/password/reset",
		httpx.Chain(http.HandlerFunc(pw.HandleReset), httpx.RateLimitByIP(httpx.StrictLimit)),
	)

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	// Public endpoints: tokens are guessable only by brute force.
	r.Mux.Handle("POST /v1/invitations/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /v1/invitations/claim",
		httpx.Chain(http.HandlerFunc(h.HandleClaim), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
}

func (r *Router) registerCheckins() {
	h := &CheckinsHandler{
		CheckinService:    r.CheckinService,
		AttendanceService: r.AttendanceService,
	}

	r.Mux.Handle("POST /v1/checkins", r.secured(h.HandleCheckIn, domain.ScopeCheckinsWrite, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/checkins", r.secured(h.HandleList, domain.ScopeAttendanceRead, httpx.LenientLimit))
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{SessionService: r.SessionService}

	r.Mux.Handle("GET /v1/sessions", r.secured(h.HandleList, domain.ScopeSessionsRead, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/sessions/{id}", r.secured(h.HandleGet, domain.ScopeSessionsRead, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/calendar", r.secured(h.HandleCalendar, domain.ScopeSessionsRead, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/sessions", r.secured(h.HandleCreate, domain.ScopeSessionsWrite, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/sessions/{id}", r.secured(h.HandleUpdate, domain.ScopeSessionsWrite, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/sessions/{id}/close", r.secured(h.HandleClose, domain.ScopeSessionsWrite, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/sessions/{id}/cancel", r.secured(h.HandleCancel, domain.ScopeSessionsWrite, httpx.ModerateLimit))
}

func (r *Router) registerOrganization() {
	h := &OrganizationHandler{OrganizationService: r.OrganizationService}

	r.Mux.Handle("GET /v1/me", r.secured(h.HandleMe, domain.ScopeProfileRead, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/organization", r.secured(h.HandleGet, domain.ScopeProfileRead, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/organization", r.secured(h.HandleUpdate, domain.ScopeOrgWrite, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/staff", r.secured(h.HandleStaff, domain.ScopeProfileRead, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/staff/invite", r.secured(h.HandleInvite, domain.ScopeStaffWrite, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/staff/{id}", r.secured(h.HandleRemove, domain.ScopeStaffWrite, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/class-templates", r.secured(h.HandleTemplates, domain.ScopeProfileRead, httpx.LenientLimit))
}

func (r *Router) registerFinance() {
	f := &FinanceHandler{FinanceService: r.FinanceService}
	a := &AnalyticsHandler{AnalyticsService: r.AnalyticsService}

	r.Mux.Handle("GET /v1/earnings", r.secured(f.HandleEarnings, domain.ScopeFinanceRead, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/payouts", r.secured(f.HandlePayouts, domain.ScopeFinanceRead, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/disputes", r.secured(f.HandleDisputes, domain.ScopeFinanceRead, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/disputes", r.secured(f.HandleOpenDispute, domain.ScopeDisputesWrite, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/summary", r.secured(a.HandleSummary, domain.ScopeProfileRead, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/analytics", r.secured(a.HandleMonthly, domain.ScopeAnalyticsRead, httpx.LenientLimit))
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	r.Mux.Handle("POST /v1/mfa/totp/enroll", r.secured(h.HandleEnroll, domain.ScopeMFAManage, httpx.ModerateLimit))
	// Strict: a six digit code is cheap to brute force.
	r.Mux.Handle("POST /v1/mfa/totp/verify", r.secured(h.HandleVerify, domain.ScopeMFAManage, httpx.StrictLimit))
	r.Mux.Handle("DELETE /v1/mfa/totp", r.secured(h.HandleDisable, domain.ScopeMFAManage, httpx.StrictLimit))
}

func (r *Router) registerPlatform() {
	h := &PlatformHandler{PlatformService: r.PlatformService}

	// Authorized by the shared platform token inside the service.
	r.Mux.Handle("POST /v1/platform/organizations",
		httpx.Chain(http.HandlerFunc(h.HandleOnboard), httpx.RateLimitByIP(httpx.ModerateLimit)),
	)
	r.Mux.Handle("POST /v1/platform/bookings",
		httpx.Chain(http.HandlerFunc(h.HandleBooking), httpx.RateLimitByIP(httpx.ModerateLimit)),
	)
	r.Mux.Handle("POST /v1/platform/payouts",
		httpx.Chain(http.HandlerFunc(h.HandlePayout), httpx.RateLimitByIP(httpx.ModerateLimit)),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(httpx.LenientLimit)),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys), httpx.RateLimitByIP(httpx.LenientLimit)),
	)
}
