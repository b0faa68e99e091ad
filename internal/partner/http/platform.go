package http

import (
	"net/http"
	"strings"

	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

// PlatformHandler serves the /v1/platform endpoints called by the
// KidVenture back office with the shared platform token.
type PlatformHandler struct {
	PlatformService *service.PlatformService
}

func bearerToken(r *http.Request) string {
	scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(raw)
}

// HandleOnboard godoc
//
//	@Summary		Onboard a partner organization
//	@Description	Creates the organization with its locations and class templates and mints the first manager invitation. The invitation token is returned once.
//	@Tags			Platform
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		partnersdk.OnboardRequest	true	"Organization"
//	@Success		201		{object}	partnersdk.OnboardResponse
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Failure		401		{object}	partnersdk.ErrorResponse
//	@Failure		404		{object}	partnersdk.ErrorResponse	"platform API disabled"
//	@Router			/v1/platform/organizations [post].
func (h *PlatformHandler) HandleOnboard(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.OnboardRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	onboard := service.OnboardRequest{
		DisplayName:      req.DisplayName,
		LegalName:        req.LegalName,
		Timezone:         req.Timezone,
		CreditValueCents: req.CreditValueCents,
		ManagerEmail:     req.ManagerEmail,
	}
	for _, l := range req.Locations {
		onboard.Locations = append(onboard.Locations, service.OnboardLocation{Name: l.Name, Address: l.Address})
	}
	for _, t := range req.Templates {
		onboard.Templates = append(onboard.Templates, service.OnboardTemplate{
			Title:           t.Title,
			Description:     t.Description,
			DurationMinutes: t.DurationMinutes,
			AgeMin:          t.AgeMin,
			AgeMax:          t.AgeMax,
			CreditsCost:     t.CreditsCost,
		})
	}

	res, err := h.PlatformService.Onboard(r.Context(), bearerToken(r), onboard)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, partnersdk.OnboardResponse{
		OrganizationID:  res.Organization.ID,
		Locations:       toLocations(res.Locations),
		Templates:       toTemplates(res.Templates),
		InvitationID:    res.Invitation.ID,
		InvitationToken: res.InvitationToken,
		ExpiresAt:       res.Invitation.ExpiresAt,
	})
}

// HandleBooking godoc
//
//	@Summary		Book a KVP spot
//	@Description	Reserves a spot in an open future session and returns the token for the family's QR code.
//	@Tags			Platform
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		partnersdk.PlatformBookingRequest	true	"Booking"
//	@Success		201		{object}	partnersdk.PlatformBookingResponse
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Failure		401		{object}	partnersdk.ErrorResponse
//	@Failure		404		{object}	partnersdk.ErrorResponse
//	@Router			/v1/platform/bookings [post].
func (h *PlatformHandler) HandleBooking(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.PlatformBookingRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	b, token, err := h.PlatformService.CreateBooking(r.Context(), bearerToken(r), service.BookingRequest{
		SessionID:  req.SessionID,
		KidID:      req.KidID,
		KidName:    req.KidName,
		ParentName: req.ParentName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, partnersdk.PlatformBookingResponse{
		BookingID:   b.ID,
		Token:       token,
		CreditsCost: b.CreditsCost,
	})
}

// HandlePayout godoc
//
//	@Summary	Record a payout batch
//	@Tags		Platform
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		partnersdk.PlatformPayoutRequest	true	"Payout"
//	@Success	201		{object}	partnersdk.Payout
//	@Failure	400		{object}	partnersdk.ErrorResponse
//	@Failure	401		{object}	partnersdk.ErrorResponse
//	@Router		/v1/platform/payouts [post].
func (h *PlatformHandler) HandlePayout(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.PlatformPayoutRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	p, err := h.PlatformService.RecordPayout(r.Context(), bearerToken(r), service.PayoutRequest{
		OrganizationID: req.OrganizationID,
		PeriodStart:    req.PeriodStart,
		PeriodEnd:      req.PeriodEnd,
		AmountCents:    req.AmountCents,
		Status:         req.Status,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPayout(p))
}
