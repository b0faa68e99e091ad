package partnersdk

import (
	"context"
	"net/http"
	"net/url"
)

func (s *Session) Sessions(ctx context.Context, q SessionQuery) (*SessionsResponse, error) {
	path := withQuery("/v1/sessions", url.Values{
		"from":       {q.From},
		"to":         {q.To},
		"locationId": {q.LocationID},
		"status":     {q.Status},
	})

	var out SessionsResponse
	if err := s.authJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK, ScopeSessionsRead); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ClassSession(ctx context.Context, id string) (*ClassSession, error) {
	var out ClassSession
	if err := s.authJSON(ctx, http.MethodGet, "/v1/sessions/"+url.PathEscape(id), nil, &out, http.StatusOK, ScopeSessionsRead); err != nil {
		return nil, err
	}
	return &out, nil
}

// Calendar returns the week (Sunday start) or month containing date.
func (s *Session) Calendar(ctx context.Context, view, date string) (*CalendarResponse, error) {
	path := withQuery("/v1/calendar", url.Values{"view": {view}, "date": {date}})

	var out CalendarResponse
	if err := s.authJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK, ScopeSessionsRead); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSession schedules a session, or every occurrence of a recurrence.
func (s *Session) CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionsResponse, error) {
	var out SessionsResponse
	if err := s.authJSON(ctx, http.MethodPost, "/v1/sessions", req, &out, http.StatusCreated, ScopeSessionsWrite); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateSession(ctx context.Context, id string, req UpdateSessionRequest) (*ClassSession, error) {
	var out ClassSession
	if err := s.authJSON(ctx, http.MethodPatch, "/v1/sessions/"+url.PathEscape(id), req, &out, http.StatusOK, ScopeSessionsWrite); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CloseSession(ctx context.Context, id string) (*ClassSession, error) {
	return s.sessionAction(ctx, id, "close")
}

func (s *Session) CancelSession(ctx context.Context, id string) (*ClassSession, error) {
	return s.sessionAction(ctx, id, "cancel")
}

func (s *Session) sessionAction(ctx context.Context, id, action string) (*ClassSession, error) {
	var out ClassSession
	path := "/v1/sessions/" + url.PathEscape(id) + "/" + action
	if err := s.authJSON(ctx, http.MethodPost, path, nil, &out, http.StatusOK, ScopeSessionsWrite); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ClassTemplates(ctx context.Context) (*ClassTemplatesResponse, error) {
	var out ClassTemplatesResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/class-templates", nil, &out, http.StatusOK, ScopeProfileRead); err != nil {
		return nil, err
	}
	return &out, nil
}
