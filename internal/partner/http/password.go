package http

import (
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

type PasswordHandler struct {
	PasswordService *service.PasswordService
}

// HandleForgot godoc
//
//	@Summary		Request a password reset
//	@Description	Emails a single-use reset link when the address belongs to an active account. The answer is the same for unknown addresses.
//	@Tags			Auth
//	@Accept			json
//	@Param			body	body	partnersdk.ForgotPasswordRequest	true	"Account email"
//	@Success		202
//	@Failure		400	{object}	partnersdk.ErrorResponse	"malformed body"
//	@Failure		429	{object}	partnersdk.ErrorResponse
//	@Router			/v1/auth/password/forgot [post].
func (h *PasswordHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.ForgotPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	h.PasswordService.Forgot(r.Context(), req.Email)
	w.WriteHeader(http.StatusAccepted)
}

// HandleReset godoc
//
//	@Summary		Reset a password
//	@Description	Sets a new password with the token from a reset email. The token works once, and every refresh token of the account is revoked.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body	partnersdk.ResetPasswordRequest	true	"Reset"
//	@Success		204
//	@Failure		400	{object}	partnersdk.ErrorResponse	"invalid_token, weak_password or password_mismatch"
//	@Failure		404	{object}	partnersdk.ErrorResponse	"not_found or expired"
//	@Failure		503	{object}	partnersdk.ErrorResponse
//	@Router			/v1/auth/password/reset [post].
func (h *PasswordHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	err := h.PasswordService.Reset(r.Context(), service.ResetPasswordRequest{
		Token:                req.Token,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
