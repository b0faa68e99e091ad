package http

import (
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

type OrganizationHandler struct {
	OrganizationService *service.OrganizationService
}

// HandleMe godoc
//
//	@Summary	Signed in account
//	@Tags		Account
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	partnersdk.MeResponse
//	@Failure	401	{object}	partnersdk.ErrorResponse
//	@Failure	404	{object}	partnersdk.ErrorResponse	"account removed"
//	@Router		/v1/me [get].
func (h *OrganizationHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	acc, org, err := h.OrganizationService.Account(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, partnersdk.MeResponse{
		ID:               acc.ID,
		Email:            acc.Email,
		FirstName:        acc.FirstName,
		LastName:         acc.LastName,
		Role:             partnersdk.Role(acc.Role),
		OrganizationID:   org.ID,
		OrganizationName: org.DisplayName,
		MFAEnabled:       acc.MFAEnabled(),
		CreatedAt:        acc.CreatedAt,
	})
}

// HandleGet godoc
//
//	@Summary		Organization settings
//	@Description	Names, time zone, payout account status, locations and staff. Pending invitations are listed as staff with status pending.
//	@Tags			Organization
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	partnersdk.OrganizationResponse
//	@Router			/v1/organization [get].
func (h *OrganizationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.OrganizationService.Profile(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrganization(profile))
}

// HandleUpdate godoc
//
//	@Summary	Rename the organization
//	@Tags		Organization
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		partnersdk.UpdateOrganizationRequest	true	"Display name"
//	@Success	200		{object}	partnersdk.OrganizationResponse
//	@Failure	400		{object}	partnersdk.ErrorResponse
//	@Failure	403		{object}	partnersdk.ErrorResponse
//	@Router		/v1/organization [patch].
func (h *OrganizationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.UpdateOrganizationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	ctx := r.Context()
	p := principalFrom(ctx)
	if _, err := h.OrganizationService.UpdateDisplayName(ctx, p, req.DisplayName); err != nil {
		writeError(w, r, err)
		return
	}
	profile, err := h.OrganizationService.Profile(ctx, p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrganization(profile))
}

// HandleStaff godoc
//
//	@Summary	List staff
//	@Tags		Organization
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	partnersdk.StaffResponse
//	@Router		/v1/staff [get].
func (h *OrganizationHandler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.OrganizationService.Staff(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, partnersdk.StaffResponse{Staff: toStaff(staff)})
}

// HandleInvite godoc
//
//	@Summary		Invite a staff member
//	@Description	Mints an invitation and emails its signup link. A failed delivery is logged and the invitation stays valid.
//	@Tags			Organization
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		partnersdk.InviteStaffRequest	true	"Email and role"
//	@Success		201		{object}	partnersdk.StaffMember
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Failure		403		{object}	partnersdk.ErrorResponse
//	@Router			/v1/staff/invite [post].
func (h *OrganizationHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.InviteStaffRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	member, err := h.OrganizationService.InviteStaff(r.Context(), principalFrom(r.Context()), req.Email, string(req.Role))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toStaffMember(member))
}

// HandleRemove godoc
//
//	@Summary		Remove a staff member
//	@Description	Deactivates the account and revokes its refresh tokens. Managers cannot remove themselves.
//	@Tags			Organization
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Account ID"
//	@Success		204
//	@Failure		400	{object}	partnersdk.ErrorResponse
//	@Failure		404	{object}	partnersdk.ErrorResponse
//	@Router			/v1/staff/{id} [delete].
func (h *OrganizationHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if err := h.OrganizationService.RemoveStaff(r.Context(), principalFrom(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleTemplates godoc
//
//	@Summary	List class templates
//	@Tags		Sessions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	partnersdk.ClassTemplatesResponse
//	@Router		/v1/class-templates [get].
func (h *OrganizationHandler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.OrganizationService.Templates(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, partnersdk.ClassTemplatesResponse{ClassTemplates: toTemplates(templates)})
}
