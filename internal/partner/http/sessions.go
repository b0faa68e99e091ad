package http

import (
	"net/http"

	"github.com/kidventure/partnerhub/internal/partner/domain"
	"github.com/kidventure/partnerhub/internal/partner/service"
	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/kidventure/partnerhub/pkg/partnersdk"
)

type SessionsHandler struct {
	SessionService *service.SessionService
}

// HandleList godoc
//
//	@Summary		List class sessions
//	@Description	Sessions of the organization ordered by start. Dates are local to the organization.
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			from		query		string	false	"First local date, YYYY-MM-DD"
//	@Param			to			query		string	false	"Last local date, YYYY-MM-DD"
//	@Param			locationId	query		string	false	"Location filter"
//	@Param			status		query		string	false	"Status filter"	Enums(open, closed, canceled)
//	@Success		200			{object}	partnersdk.SessionsResponse
//	@Failure		400			{object}	partnersdk.ErrorResponse
//	@Router			/v1/sessions [get].
func (h *SessionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	views, err := h.SessionService.List(r.Context(), principalFrom(r.Context()), service.SessionQuery{
		From:       q.Get("from"),
		To:         q.Get("to"),
		LocationID: q.Get("locationId"),
		Status:     q.Get("status"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, partnersdk.SessionsResponse{Sessions: toClassSessions(views)})
}

// HandleGet godoc
//
//	@Summary	Get a class session
//	@Tags		Sessions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Session ID"
//	@Success	200	{object}	partnersdk.ClassSession
//	@Failure	404	{object}	partnersdk.ErrorResponse
//	@Router		/v1/sessions/{id} [get].
func (h *SessionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	v, err := h.SessionService.Get(r.Context(), principalFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClassSession(v))
}

// HandleCalendar godoc
//
//	@Summary		Calendar view
//	@Description	Sessions bucketed by local date for the week (Sunday start) or month containing date. Days without sessions are included.
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			view	query		string	false	"week or month, default week"	Enums(week, month)
//	@Param			date	query		string	false	"Any local date in the range, default today"
//	@Success		200		{object}	partnersdk.CalendarResponse
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Router			/v1/calendar [get].
func (h *SessionsHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	view := r.URL.Query().Get("view")
	if view == "" {
		view = "week"
	}

	days, err := h.SessionService.Calendar(r.Context(), principalFrom(r.Context()), view, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := partnersdk.CalendarResponse{View: view, Days: make([]partnersdk.CalendarDay, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, partnersdk.CalendarDay{Date: d.Date, Sessions: toClassSessions(d.Sessions)})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Schedule class sessions
//	@Description	Creates a session, or every occurrence of a daily, weekly or custom recurrence (at most 366) in one transaction. Times are local to the organization.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		partnersdk.CreateSessionRequest	true	"Session"
//	@Success		201		{object}	partnersdk.SessionsResponse
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Failure		403		{object}	partnersdk.ErrorResponse
//	@Router			/v1/sessions [post].
func (h *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.CreateSessionRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	create := service.CreateSessionRequest{
		TemplateID:    req.TemplateID,
		LocationID:    req.LocationID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		CapacityTotal: req.CapacityTotal,
		CapacityKVP:   req.CapacityKVP,
	}
	if rec := req.Recurrence; rec != nil {
		create.Recurrence = &domain.Recurrence{
			Type:       domain.RecurrenceType(rec.Type),
			EndDate:    rec.EndDate,
			DaysOfWeek: rec.DaysOfWeek,
			Interval:   rec.Interval,
		}
	}

	ctx := r.Context()
	p := principalFrom(ctx)
	sessions, err := h.SessionService.Create(ctx, p, create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Re-read so the response carries titles and booking counts.
	out := partnersdk.SessionsResponse{Sessions: make([]partnersdk.ClassSession, 0, len(sessions))}
	for _, s := range sessions {
		v, err := h.SessionService.Get(ctx, p, s.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		out.Sessions = append(out.Sessions, toClassSession(v))
	}
	httpx.WriteJSON(w, http.StatusCreated, out)
}

// HandleUpdate godoc
//
//	@Summary		Update a class session
//	@Description	Changes times, capacities or the open/closed status. Canceled sessions cannot be edited.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Session ID"
//	@Param			body	body		partnersdk.UpdateSessionRequest	true	"Fields to change"
//	@Success		200		{object}	partnersdk.ClassSession
//	@Failure		400		{object}	partnersdk.ErrorResponse
//	@Failure		404		{object}	partnersdk.ErrorResponse
//	@Router			/v1/sessions/{id} [patch].
func (h *SessionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req partnersdk.UpdateSessionRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	v, err := h.SessionService.Update(r.Context(), principalFrom(r.Context()), r.PathValue("id"), service.UpdateSessionRequest{
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		CapacityTotal: req.CapacityTotal,
		CapacityKVP:   req.CapacityKVP,
		Status:        req.Status,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClassSession(v))
}

// HandleClose godoc
//
//	@Summary	Close a class session
//	@Tags		Sessions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Session ID"
//	@Success	200	{object}	partnersdk.ClassSession
//	@Failure	400	{object}	partnersdk.ErrorResponse	"session is not open"
//	@Failure	404	{object}	partnersdk.ErrorResponse
//	@Router		/v1/sessions/{id}/close [post].
func (h *SessionsHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	v, err := h.SessionService.Close(r.Context(), principalFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClassSession(v))
}

// HandleCancel godoc
//
//	@Summary		Cancel a class session
//	@Description	Bookings of a canceled session are rejected at check-in.
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	partnersdk.ClassSession
//	@Failure		400	{object}	partnersdk.ErrorResponse	"already canceled"
//	@Failure		404	{object}	partnersdk.ErrorResponse
//	@Router			/v1/sessions/{id}/cancel [post].
func (h *SessionsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	v, err := h.SessionService.Cancel(r.Context(), principalFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClassSession(v))
}
