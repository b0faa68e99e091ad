package partnersdk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kidventure/partnerhub/pkg/jwtx"
)

// Role is the partner role of the signed in account.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

// AuthEvent names a session state change.
type AuthEvent string

const (
	EventSignedIn       AuthEvent = "SIGNED_IN"
	EventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
	EventSignedOut      AuthEvent = "SIGNED_OUT"
)

// refreshBuffer refreshes access tokens this long before they expire.
const refreshBuffer = 30 * time.Second

// ErrSignedOut is returned by authenticated calls on a session without
// tokens.
var ErrSignedOut = errors.New("partnersdk: session is signed out")

// Session holds the tokens of one signed in account and refreshes them on
// demand. Callbacks registered with OnAuthStateChange observe sign in,
// refresh and sign out; they run synchronously after the state changed and
// must not call back into the session's sign in methods.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
	scopes       map[string]bool
	role         Role
	accountID    string
	orgID        string

	cbMu      sync.Mutex
	nextCB    int
	callbacks map[int]func(AuthEvent, *Session)
}

// NewSession returns a signed out session.
func (c *Client) NewSession() *Session {
	return &Session{
		client:    c,
		scopes:    map[string]bool{},
		callbacks: map[int]func(AuthEvent, *Session){},
	}
}

// SignIn creates a session with a password grant. Accounts with TOTP
// enabled return *MFARequiredError; finish with Session.CompleteMFA on a
// session from NewSession.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	s := c.NewSession()
	if err := s.SignIn(ctx, email, password); err != nil {
		return nil, err
	}
	return s, nil
}

// OnAuthStateChange registers cb and returns a func that removes it.
func (s *Session) OnAuthStateChange(cb func(AuthEvent, *Session)) (unsubscribe func()) {
	s.cbMu.Lock()
	id := s.nextCB
	s.nextCB++
	s.callbacks[id] = cb
	s.cbMu.Unlock()

	return func() {
		s.cbMu.Lock()
		delete(s.callbacks, id)
		s.cbMu.Unlock()
	}
}

func (s *Session) emit(ev AuthEvent) {
	s.cbMu.Lock()
	cbs := make([]func(AuthEvent, *Session), 0, len(s.callbacks))
	for _, cb := range s.callbacks {
		cbs = append(cbs, cb)
	}
	s.cbMu.Unlock()

	for _, cb := range cbs {
		cb(ev, s)
	}
}

// SignIn performs a password grant and emits SIGNED_IN.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	tok, err := s.client.PasswordGrant(ctx, email, password)
	if err != nil {
		return err
	}
	return s.signedIn(tok)
}

// CompleteMFA finishes a sign in that returned *MFARequiredError.
func (s *Session) CompleteMFA(ctx context.Context, mfaToken, code string) error {
	tok, err := s.client.MFAGrant(ctx, mfaToken, code)
	if err != nil {
		return err
	}
	return s.signedIn(tok)
}

// Restore signs in from a stored refresh token, rotating it.
func (s *Session) Restore(ctx context.Context, refreshToken string) error {
	tok, err := s.client.RefreshGrant(ctx, refreshToken)
	if err != nil {
		return err
	}
	return s.signedIn(tok)
}

// SignOut revokes the refresh token and clears the session. The session is
// cleared and SIGNED_OUT emitted even when revocation fails.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	refreshToken := s.refreshToken
	s.clear()
	s.mu.Unlock()

	var err error
	if refreshToken != "" {
		err = s.client.RevokeToken(ctx, refreshToken)
	}
	s.emit(EventSignedOut)
	return err
}

func (s *Session) signedIn(tok *TokenResponse) error {
	s.mu.Lock()
	err := s.setTokens(tok, true)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.emit(EventSignedIn)
	return nil
}

// setTokens stores a token response. The role and identity are read from
// the access token only when resolveIdentity is set, which happens once per
// sign in. Callers hold s.mu.
func (s *Session) setTokens(tok *TokenResponse, resolveIdentity bool) error {
	if resolveIdentity {
		claims, err := parseAccessToken(tok.AccessToken)
		if err != nil {
			return err
		}
		s.role = Role(claims.Role)
		s.accountID = claims.Subject
		s.orgID = claims.OrgID
	}

	s.accessToken = tok.AccessToken
	s.refreshToken = tok.RefreshToken
	s.expiresAt = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - refreshBuffer)
	s.scopes = parseScopes(tok.Scope)
	return nil
}

// clear drops all tokens. Callers hold s.mu.
func (s *Session) clear() {
	s.accessToken = ""
	s.refreshToken = ""
	s.expiresAt = time.Time{}
	s.scopes = map[string]bool{}
	s.role = ""
	s.accountID = ""
	s.orgID = ""
}

// parseAccessToken reads the claims without verifying the signature; the
// token came straight from the token endpoint and the server verifies it on
// every call.
func parseAccessToken(raw string) (jwtx.Claims, error) {
	var claims jwtx.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return jwtx.Claims{}, fmt.Errorf("partnersdk: malformed access token: %w", err)
	}
	switch Role(claims.Role) {
	case RoleStaff, RoleManager:
	default:
		return jwtx.Claims{}, fmt.Errorf("partnersdk: access token has unknown role %q", claims.Role)
	}
	return claims, nil
}

func parseScopes(scopeStr string) map[string]bool {
	parts := strings.Fields(scopeStr)
	scopes := make(map[string]bool, len(parts))
	for _, scope := range parts {
		scopes[scope] = true
	}
	return scopes
}

// getValidToken returns the access token, refreshing it first when it is
// about to expire. A failed refresh signs the session out.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.accessToken != "" && time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	// Another goroutine may have refreshed while we waited.
	if s.accessToken != "" && time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.Unlock()
		return token, nil
	}
	if s.refreshToken == "" {
		s.mu.Unlock()
		return "", ErrSignedOut
	}

	tok, err := s.client.RefreshGrant(ctx, s.refreshToken)
	if err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			// Network failure; keep the tokens for the next attempt.
			s.mu.Unlock()
			return "", fmt.Errorf("failed to refresh token: %w", err)
		}
		s.clear()
		s.mu.Unlock()
		s.emit(EventSignedOut)
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	_ = s.setTokens(tok, false)
	token := s.accessToken
	s.mu.Unlock()

	s.emit(EventTokenRefreshed)
	return token, nil
}

// Role returns the role resolved at sign in, empty when signed out.
func (s *Session) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) IsManager() bool { return s.Role() == RoleManager }

func (s *Session) AccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID
}

func (s *Session) OrganizationID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orgID
}

// SignedIn reports whether the session holds tokens.
func (s *Session) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken != "" || s.accessToken != ""
}

// AccessToken returns the current access token without checking expiry.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, for storing and a later
// Restore.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

func (s *Session) HasScope(scope string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scopes[scope]
}

// checkScopes fails when CheckScopes is on and a required scope is missing.
func (s *Session) checkScopes(required ...string) error {
	if !s.client.CheckScopes || len(required) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.accessToken == "" && s.refreshToken == "" {
		return ErrSignedOut
	}

	var missing []string
	for _, scope := range required {
		if !s.scopes[scope] {
			missing = append(missing, scope)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required scope(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
