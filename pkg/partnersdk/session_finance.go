package partnersdk

import (
	"context"
	"net/http"
	"net/url"
)

// Earnings returns the month's per-session earnings. An empty period is the
// current month in the organization's time zone.
func (s *Session) Earnings(ctx context.Context, period string) (*EarningsResponse, error) {
	var out EarningsResponse
	path := withQuery("/v1/earnings", url.Values{"period": {period}})
	if err := s.authJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK, ScopeFinanceRead); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Payouts(ctx context.Context) (*PayoutsResponse, error) {
	var out PayoutsResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/payouts", nil, &out, http.StatusOK, ScopeFinanceRead); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Disputes(ctx context.Context) (*DisputesResponse, error) {
	var out DisputesResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/disputes", nil, &out, http.StatusOK, ScopeFinanceRead); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) OpenDispute(ctx context.Context, req DisputeRequest) (*Dispute, error) {
	var out Dispute
	if err := s.authJSON(ctx, http.MethodPost, "/v1/disputes", req, &out, http.StatusCreated, ScopeDisputesWrite); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Summary(ctx context.Context) (*SummaryResponse, error) {
	var out SummaryResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/summary", nil, &out, http.StatusOK, ScopeProfileRead); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Analytics(ctx context.Context, period string) (*AnalyticsResponse, error) {
	var out AnalyticsResponse
	path := withQuery("/v1/analytics", url.Values{"period": {period}})
	if err := s.authJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK, ScopeAnalyticsRead); err != nil {
		return nil, err
	}
	return &out, nil
}
