package http

import (
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

type FinanceHandler struct {
	FinanceService *service.FinanceService
}

// HandleEarnings godoc
//
//	@Summary		Monthly earnings
//	@Description	One line per session with check-ins. Amounts are credits spent times the organization's credit value.
//	@Tags			Finance
//	@Produce		json
//	@Security		BearerAuth
//	@Param			period	query		string	false	"YYYY-MM, default the current month"
//	@Success		200		{object}	partnersdk.EarningsResponse
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Failure		403		{object}	partnersdk.ErrorResponse
//	@Router			/v1/earnings [get].
func (h *FinanceHandler) HandleEarnings(w http.ResponseWriter, r *http.Request) {
	report, err := h.FinanceService.Earnings(r.Context(), principalFrom(r.Context()), r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := partnersdk.EarningsResponse{
		Period:   report.Period,
		TotalUSD: domain.CentsToUSD(report.TotalCents),
		Lines:    make([]partnersdk.EarningsLine, 0, len(report.Lines)),
	}
	for _, l := range report.Lines {
		out.Lines = append(out.Lines, partnersdk.EarningsLine{
			Date:          l.Date,
			SessionID:     l.SessionID,
			ClassTitle:    l.ClassTitle,
			CheckinsCount: l.CheckinsCount,
			Credits:       l.Credits,
			AmountUSD:     domain.CentsToUSD(l.AmountCents),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandlePayouts godoc
//
//	@Summary	Payout batches
//	@Tags		Finance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	partnersdk.PayoutsResponse
//	@Failure	403	{object}	partnersdk.ErrorResponse
//	@Router		/v1/payouts [get].
func (h *FinanceHandler) HandlePayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.FinanceService.Payouts(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := partnersdk.PayoutsResponse{Payouts: make([]partnersdk.Payout, 0, len(payouts))}
	for _, p := range payouts {
		out.Payouts = append(out.Payouts, toPayout(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDisputes godoc
//
//	@Summary	List disputes
//	@Tags		Finance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	partnersdk.DisputesResponse
//	@Failure	403	{object}	partnersdk.ErrorResponse
//	@Router		/v1/disputes [get].
func (h *FinanceHandler) HandleDisputes(w http.ResponseWriter, r *http.Request) {
	disputes, err := h.FinanceService.Disputes(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := partnersdk.DisputesResponse{Disputes: make([]partnersdk.Dispute, 0, len(disputes))}
	for _, d := range disputes {
		out.Disputes = append(out.Disputes, toDispute(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleOpenDispute godoc
//
//	@Summary		Dispute a check-in
//	@Description	Reason is one of wrong_checkin_time, technical_issue, duplicate_entry, incorrect_credits or other; other requires notes.
//	@Tags			Finance
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		partnersdk.DisputeRequest	true	"Dispute"
//	@Success		201		{object}	partnersdk.Dispute
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Failure		404		{object}	partnersdk.ErrorResponse	"booking not found"
//	@Router			/v1/disputes [post].
func (h *FinanceHandler) HandleOpenDispute(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.DisputeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	d, err := h.FinanceService.OpenDispute(r.Context(), principalFrom(r.Context()), service.DisputeRequest{
		BookingID: req.BookingID,
		Reason:    req.Reason,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDispute(d))
}
