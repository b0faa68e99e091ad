package partnersdk

import (
	"context"
	"net/http"
	"net/url"
)

const (
	tokenPath  = "/v1/auth/token"
	revokePath = "/v1/auth/revoke"
)

// PasswordGrant exchanges staff credentials for tokens. An account with
// TOTP enabled yields *MFARequiredError instead.
func (c *Client) PasswordGrant(ctx context.Context, email, password string) (*TokenResponse, error) {
	return c.requestToken(ctx, url.Values{
		"grant_type": {"password"},
		"email":      {email},
		"password":   {password},
	})
}

// MFAGrant completes a password grant with a TOTP code.
func (c *Client) MFAGrant(ctx context.Context, mfaToken, code string) (*TokenResponse, error) {
	return c.requestToken(ctx, url.Values{
		"grant_type": {"mfa_otp"},
		"mfa_token":  {mfaToken},
		"code":       {code},
	})
}

// RefreshGrant rotates a refresh token. The old token stops working.
func (c *Client) RefreshGrant(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	return c.requestToken(ctx, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	})
}

// RevokeToken revokes a refresh token. Unknown tokens are not an error.
func (c *Client) RevokeToken(ctx context.Context, refreshToken string) error {
	resp, err := c.postForm(ctx, revokePath, url.Values{"token": {refreshToken}})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *Client) requestToken(ctx context.Context, data url.Values) (*TokenResponse, error) {
	resp, err := c.postForm(ctx, tokenPath, data)
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokenResp, nil
}
