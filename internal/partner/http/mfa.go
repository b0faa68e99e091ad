package http

import (
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll godoc
//
//	@Summary		Start TOTP enrolment
//	@Description	Returns a new secret and otpauth URL. MFA is enabled once a code from it is verified.
//	@Tags			MFA
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	partnersdk.TOTPEnrollResponse
//	@Failure		409	{object}	partnersdk.ErrorResponse	"already enabled"
//	@Router			/v1/mfa/totp/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	e, err := h.MFAService.EnrollTOTP(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, partnersdk.TOTPEnrollResponse{
		Secret:  e.Secret,
		URL:     e.URL,
		Issuer:  e.Issuer,
		Account: e.Account,
	})
}

// HandleVerify godoc
//
//	@Summary	Enable TOTP
//	@Tags		MFA
//	@Accept		json
//	@Security	BearerAuth
//	@Param		body	body	partnersdk.TOTPCodeRequest	true	"Code"
//	@Success	204
//	@Failure	400	{object}	partnersdk.ErrorResponse
//	@Failure	409	{object}	partnersdk.ErrorResponse
//	@Router		/v1/mfa/totp/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.TOTPCodeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := h.MFAService.VerifyTOTP(r.Context(), principalFrom(r.Context()), req.Code); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDisable godoc
//
//	@Summary	Disable TOTP
//	@Tags		MFA
//	@Accept		json
//	@Security	BearerAuth
//	@Param		body	body	partnersdk.TOTPCodeRequest	true	"Current code"
//	@Success	204
//	@Failure	400	{object}	partnersdk.ErrorResponse
//	@Failure	409	{object}	partnersdk.ErrorResponse
//	@Router		/v1/mfa/totp [delete].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.TOTPCodeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := h.MFAService.DisableTOTP(r.Context(), principalFrom(r.Context()), req.Code); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
