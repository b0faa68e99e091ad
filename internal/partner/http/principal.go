package http

import (
	"context"
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/pkg/httpx"
)

type principalKey struct{}

// PrincipalMiddleware turns the verified claims left by
// httpx.AuthnMiddleware into a domain.Principal. Tokens without a known
// role or organization are rejected.
func PrincipalMiddleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := httpx.ClaimsFromContext(r.Context())
			if !ok {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}
			role, err := domain.ParseRole(claims.Role)
			if err != nil || claims.OrgID == "" || claims.Subject == "" {
				httpx.WriteBearerError(w, "token is not a partner access token")
				return
			}

			p := domain.Principal{
				AccountID:      claims.Subject,
				OrganizationID: claims.OrgID,
				Role:           role,
				Email:          claims.Email,
				SessionID:      claims.SID,
				Scopes:         claims.Scopes,
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, p)))
		})
	}
}

// principalFrom returns the caller. Only handlers behind
// PrincipalMiddleware call it.
func principalFrom(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(principalKey{}).(domain.Principal)
	return p
}
