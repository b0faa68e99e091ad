package http

import (
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

type AnalyticsHandler struct {
	AnalyticsService *service.AnalyticsService
}

// HandleSummary godoc
//
//	@Summary		Dashboard summary
//	@Description	Today's sessions, this month's check-ins and estimated earnings, and the latest payout status.
//	@Tags			Analytics
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	partnersdk.SummaryResponse
//	@Router			/v1/summary [get].
func (h *AnalyticsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.AnalyticsService.Summary(r.Context(), principalFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, partnersdk.SummaryResponse{
		OrganizationID:      s.OrganizationID,
		OrganizationName:    s.OrganizationName,
		TodaySessionsCount:  s.TodaySessionsCount,
		MonthCheckinsCount:  s.MonthCheckinsCount,
		EstimatedUSD:        domain.CentsToUSD(s.EstimatedCents),
		PayoutStatus:        string(s.PayoutStatus),
		StripeConnectStatus: string(s.StripeConnectStatus),
	})
}

// HandleMonthly godoc
//
//	@Summary		Monthly analytics
//	@Description	Overview, comparison with the previous month, top classes, locations, weekly trend and peak times. Canceled sessions are left out.
//	@Tags			Analytics
//	@Produce		json
//	@Security		BearerAuth
//	@Param			period	query		string	false	"YYYY-MM, default the current month"
//	@Success		200		{object}	partnersdk.AnalyticsResponse
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Failure		403		{object}	partnersdk.ErrorResponse
//	@Router			/v1/analytics [get].
func (h *AnalyticsHandler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	a, err := h.AnalyticsService.Monthly(r.Context(), principalFrom(r.Context()), r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAnalytics(a))
}
