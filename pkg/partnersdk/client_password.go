package partnersdk

import (
	"context"
	"net/http"
)

// ForgotPassword asks for a reset link to be emailed. The server answers
// the same way whether or not the email has an account.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.postStatus(ctx, "/v1/auth/password/forgot", ForgotPasswordRequest{Email: email}, http.StatusAccepted)
}

// ResetPassword sets a new password with the token from a reset email. The
// account's existing sessions stop refreshing; sign in again afterwards.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.postStatus(ctx, "/v1/auth/password/reset", req, http.StatusNoContent)
}
