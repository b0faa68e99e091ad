package http

import (
	"net/http"
	"strings"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

// TokenHandler serves POST /v1/auth/token.
type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Token endpoint
//	@Description	Issues access and refresh tokens for partner staff. An account with TOTP enabled answers the password grant with 409 mfa_required.
//	@Tags			Auth
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			grant_type		formData	string							true	"Grant type"	Enums(password, refresh_token, mfa_otp)
//	@Param			email			formData	string							false	"Account email (password grant)"
//	@Param			password		formData	string							false	"Account password (password grant)"
//	@Param			refresh_token	formData	string							false	"Refresh token (refresh_token grant)"
//	@Param			mfa_token		formData	string							false	"MFA challenge token (mfa_otp grant)"
//	@Param			code			formData	string							false	"TOTP code (mfa_otp grant)"
//	@Success		200				{object}	partnersdk.TokenResponse
//	@Failure		400				{object}	partnersdk.ErrorResponse
//	@Failure		401				{object}	partnersdk.ErrorResponse
//	@Failure		409				{object}	partnersdk.MFARequiredResponse
//	@Failure		503				{object}	partnersdk.ErrorResponse
//	@Router			/v1/auth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// 1. Ensure the right content-type
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		partnersdk.ErrInvalidContentType.WriteError(w)
		return
	}

	// 2. Parse the form body
	if err := r.ParseForm(); err != nil {
		badRequest(w, "invalid form body")
		return
	}
	form := r.PostForm
	ctx := r.Context()

	// 3. Run the grant
	var (
		pair *domain.TokenPair
		err  error
	)
	switch form.Get("grant_type") {
	case "password":
		email, password := strings.TrimSpace(form.Get("email")), form.Get("password")
		if email == "" || password == "" {
			badRequest(w, "email and password are required")
			return
		}
		pair, err = h.TokenService.PasswordGrant(ctx, email, password)
	case "refresh_token":
		refresh := form.Get("refresh_token")
		if refresh == "" {
			badRequest(w, "refresh_token is required")
			return
		}
		pair, err = h.TokenService.RefreshGrant(ctx, refresh)
	case "mfa_otp":
		mfaToken, code := strings.TrimSpace(form.Get("mfa_token")), strings.TrimSpace(form.Get("code"))
		if mfaToken == "" || code == "" {
			badRequest(w, "mfa_token and code are required")
			return
		}
		pair, err = h.TokenService.MFAGrant(ctx, mfaToken, code)
	default:
		partnersdk.ErrUnsupportedGrantType.WriteError(w)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, partnersdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(pair.ExpiresIn.Seconds()),
		Scope:        strings.TrimSpace(pair.Scope),
		Role:         partnersdk.Role(pair.Role),
	})
}

// RevokeHandler serves POST /v1/auth/revoke.
type RevokeHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Revoke a refresh token
//	@Description	Signs a session out. Unknown tokens are accepted so the response does not reveal token validity (RFC 7009).
//	@Tags			Auth
//	@Accept			application/x-www-form-urlencoded
//	@Param			token	formData	string	true	"Refresh token"
//	@Success		204
//	@Failure		400	{object}	partnersdk.ErrorResponse
//	@Router			/v1/auth/revoke [post].
func (h *RevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, "invalid form body")
		return
	}
	token := r.PostForm.Get("token")
	if token == "" {
		badRequest(w, "token is required")
		return
	}

	if err := h.TokenService.Revoke(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
