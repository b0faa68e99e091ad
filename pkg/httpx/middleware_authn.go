package httpx

import (
	"net/http"
	"strings"

	"github.com/kidventure/partnerhub/pkg/jwtx"
	"github.com/kidventure/partnerhub/pkg/slogx"
)

// AuthnMiddleware requires a valid bearer access token and stores its
// claims in the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				WriteBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(strings.TrimSpace(raw))
			if err != nil {
				slogx.FromContext(ctx).Warn("jwt verify failed", "err", err)
				WriteBearerError(w, "token verification failed")
				return
			}

			ctx = slogx.With(contextWithAuth(ctx, claims), "account_id", claims.Subject, "org_id", claims.OrgID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WriteBearerError answers 401 with an RFC 6750 challenge.
func WriteBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
