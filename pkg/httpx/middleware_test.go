package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler, mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestAuthnAndScopes(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "iss", NumKeys: 1})
	require.NoError(t, err)

	token := func(scopes ...string) string {
		raw, err := km.GetSigner().Sign(jwtx.NewAccessClaims(jwtx.AccessParams{
			Subject: "acc_1",
			Role:    "staff",
			OrgID:   "org_1",
			Scopes:  scopes,
			Issuer:  "iss",
			TTL:     time.Minute,
		}, time.Now()))
		require.NoError(t, err)
		return raw
	}

	var seen jwtx.Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = httpx.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := httpx.Chain(inner, httpx.AuthnMiddleware(km.Verifier), httpx.RequireAnyScope("checkins:write"))

	call := func(auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/checkins", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := call("")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), "Bearer"))

	require.Equal(t, http.StatusUnauthorized, call("Bearer garbage").Code)
	require.Equal(t, http.StatusForbidden, call("Bearer "+token("sessions:read")).Code)

	rec = call("Bearer " + token("sessions:read", "checkins:write"))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "acc_1", seen.Subject)
	require.Equal(t, "org_1", seen.OrgID)
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Token string `json:"token"`
	}

	decode := func(s string) (body, error) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(s))
		err := httpx.DecodeJSON(httptest.NewRecorder(), req, &b)
		return b, err
	}

	b, err := decode(`{"token":"abc123"}`)
	require.NoError(t, err)
	require.Equal(t, "abc123", b.Token)

	for _, bad := range []string{``, `{`, `{"token":"a","extra":1}`, `{"token":"a"}{"token":"b"}`} {
		_, err := decode(bad)
		require.Error(t, err, bad)
	}
}

func TestCORS(t *testing.T) {
	h := httpx.CORS([]string{"https://partners.kidventure.test"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/v1/summary", nil)
	req.Header.Set("Origin", "https://partners.kidventure.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "https://partners.kidventure.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/summary", nil)
	req.Header.Set("Origin", "https://evil.test")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
