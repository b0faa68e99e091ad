package partnersdk

import (
	"context"
	"net/http"
	"net/url"
)

// CheckIn validates a scanned booking token. Rejections come back as a
// response with Status invalid or duplicate, not as an error.
func (s *Session) CheckIn(ctx context.Context, token string) (*CheckinResponse, error) {
	var out CheckinResponse
	if err := s.authJSON(ctx, http.MethodPost, "/v1/checkins", CheckinRequest{Token: token}, &out, http.StatusOK, ScopeCheckinsWrite); err != nil {
		return nil, err
	}
	return &out, nil
}

// Checkins lists checked in bookings, newest session first.
func (s *Session) Checkins(ctx context.Context, q AttendanceQuery) (*CheckinsResponse, error) {
	path := withQuery("/v1/checkins", url.Values{
		"dateFrom":        {q.DateFrom},
		"dateTo":          {q.DateTo},
		"locationId":      {q.LocationID},
		"classTemplateId": {q.TemplateID},
	})

	var out CheckinsResponse
	if err := s.authJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK, ScopeAttendanceRead); err != nil {
		return nil, err
	}
	return &out, nil
}
