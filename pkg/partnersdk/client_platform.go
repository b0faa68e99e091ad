package partnersdk

import (
	"context"
	"net/http"
)

// PlatformClient calls the /v1/platform endpoints used by the KidVenture
// back office: onboarding partners, booking from the parent app and
// recording payouts. Every call carries the shared platform token.
type PlatformClient struct {
	client *Client
	token  string
}

func (c *Client) Platform(token string) *PlatformClient {
	return &PlatformClient{client: c, token: token}
}

// Onboard creates an organization with its locations and class templates
// and mints the first manager invitation.
func (p *PlatformClient) Onboard(ctx context.Context, req OnboardRequest) (*OnboardResponse, error) {
	var out OnboardResponse
	if err := p.post(ctx, "/v1/platform/organizations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking reserves a KVP spot and returns the check-in token.
func (p *PlatformClient) CreateBooking(ctx context.Context, req PlatformBookingRequest) (*PlatformBookingResponse, error) {
	var out PlatformBookingResponse
	if err := p.post(ctx, "/v1/platform/bookings", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayout stores a settlement batch for an organization.
func (p *PlatformClient) RecordPayout(ctx context.Context, req PlatformPayoutRequest) (*Payout, error) {
	var out Payout
	if err := p.post(ctx, "/v1/platform/payouts", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PlatformClient) post(ctx context.Context, path string, v, target any, expectedStatus int) error {
	body, headers, err := jsonBody(v)
	if err != nil {
		return err
	}
	headers["Authorization"] = "Bearer " + p.token

	resp, err := p.client.doRequest(ctx, http.MethodPost, path, body, headers)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}
