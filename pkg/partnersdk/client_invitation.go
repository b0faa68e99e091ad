package partnersdk

import (
	"context"
	"net/http"
)

// VerifyInvitation resolves an invitation token to the details shown on
// the signup page. It has no side effects.
func (c *Client) VerifyInvitation(ctx context.Context, token string) (*VerifyInvitationResponse, error) {
	var out VerifyInvitationResponse
	if err := c.postJSON(ctx, "/v1/invitations/verify", VerifyInvitationRequest{Token: token}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimInvitation creates the account bound to the invitation. Sign in
// afterwards with the invitation's email and the chosen password.
func (c *Client) ClaimInvitation(ctx context.Context, req ClaimInvitationRequest) (*ClaimInvitationResponse, error) {
	var out ClaimInvitationResponse
	if err := c.postJSON(ctx, "/v1/invitations/claim", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
