package http

import (
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleVerify godoc
//
//	@Summary		Verify an invitation token
//	@Description	Returns the organization, role and email an invitation is bound to. Verifying has no side effects and may be repeated.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			body	body		partnersdk.VerifyInvitationRequest	true	"Invitation token"
//	@Success		200		{object}	partnersdk.VerifyInvitationResponse
//	@Failure		400		{object}	partnersdk.ErrorResponse	"invalid_token"
//	@Failure		404		{object}	partnersdk.ErrorResponse	"not_found or expired"
//	@Failure		409		{object}	partnersdk.ErrorResponse	"already_claimed"
//	@Failure		503		{object}	partnersdk.ErrorResponse
//	@Router			/v1/invitations/verify [post].
func (h *InvitationsHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.VerifyInvitationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	details, err := h.InvitationService.Verify(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, partnersdk.VerifyInvitationResponse{
		InvitationID:     details.InvitationID,
		ContactEmail:     details.ContactEmail,
		OrganizationName: details.OrganizationName,
		Role:             partnersdk.Role(details.Role),
		ExpiresAt:        details.ExpiresAt,
	})
}

// HandleClaim godoc
//
//	@Summary		Claim an invitation
//	@Description	Creates the account bound to an invitation. The email always comes from the invitation. Of two concurrent claims exactly one succeeds.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			body	body		partnersdk.ClaimInvitationRequest	true	"Claim"
//	@Success		201		{object}	partnersdk.ClaimInvitationResponse
//	@Failure		400		{object}	partnersdk.ErrorResponse	"invalid_token, weak_password, password_mismatch or invalid_request"
//	@Failure		404		{object}	partnersdk.ErrorResponse	"not_found or expired"
//	@Failure		409		{object}	partnersdk.ErrorResponse	"already_claimed or claim_race_lost"
//	@Failure		500		{object}	partnersdk.ErrorResponse	"account_creation_failed"
//	@Failure		503		{object}	partnersdk.ErrorResponse
//	@Router			/v1/invitations/claim [post].
func (h *InvitationsHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.ClaimInvitationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	account, err := h.InvitationService.Claim(r.Context(), service.ClaimRequest{
		InvitationID:         req.InvitationID,
		Token:                req.Token,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, partnersdk.ClaimInvitationResponse{
		AccountID:      account.ID,
		Email:          account.Email,
		Role:           partnersdk.Role(account.Role),
		OrganizationID: account.OrganizationID,
	})
}
