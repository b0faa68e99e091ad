package http

import (
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

type CheckinsHandler struct {
	CheckinService    *service.CheckinService
	AttendanceService *service.AttendanceService
}

// HandleCheckIn godoc
//
//	@Summary		Check in a booking
//	@Description	Validates a scanned booking token. Unknown, canceled, out of window and repeated scans are reported in the body with status invalid or duplicate; only store failures are errors.
//	@Tags			Check-in
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		partnersdk.CheckinRequest	true	"Scanned token"
//	@Success		200		{object}	partnersdk.CheckinResponse
//	@Failure		401		{object}	partnersdk.ErrorResponse
//	@Failure		403		{object}	partnersdk.ErrorResponse
//	@Failure		503		{object}	partnersdk.ErrorResponse
//	@Router			/v1/checkins [post].
func (h *CheckinsHandler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.CheckinRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	res, err := h.CheckinService.CheckIn(r.Context(), principalFrom(r.Context()), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCheckinResponse(res))
}

// HandleList godoc
//
//	@Summary		Attendance report
//	@Description	Checked-in bookings of the organization, newest session first. Kid names are masked.
//	@Tags			Check-in
//	@Produce		json
//	@Security		BearerAuth
//	@Param			dateFrom		query		string	false	"First local date, YYYY-MM-DD"
//	@Param			dateTo			query		string	false	"Last local date, YYYY-MM-DD"
//	@Param			locationId		query		string	false	"Location filter"
//	@Param			classTemplateId	query		string	false	"Class template filter"
//	@Success		200				{object}	partnersdk.CheckinsResponse
//	@Failure		400				{object}	partnersdk.ErrorResponse
//	@Failure		401				{object}	partnersdk.ErrorResponse
//	@Router			/v1/checkins [get].
func (h *CheckinsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.AttendanceService.ListCheckins(r.Context(), principalFrom(r.Context()), service.AttendanceQuery{
		DateFrom:   q.Get("dateFrom"),
		DateTo:     q.Get("dateTo"),
		LocationID: q.Get("locationId"),
		TemplateID: q.Get("classTemplateId"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := partnersdk.CheckinsResponse{Checkins: make([]partnersdk.CheckinRecord, 0, len(records))}
	for _, c := range records {
		out.Checkins = append(out.Checkins, toCheckinRecord(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
