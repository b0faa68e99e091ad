package partnersdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kidventure/partnerhub/pkg/httpx"
)

// Error codes carried in ErrorResponse.Error. The OAuth2 ones follow RFC 6749
// and RFC 6750; the rest name the partner hub error kinds.
const (
	ErrorCodeInvalidRequest         = "invalid_request"
	ErrorCodeInvalidGrant           = "invalid_grant"
	ErrorCodeUnsupportedGrantType   = "unsupported_grant_type"
	ErrorCodeInvalidToken           = "invalid_token"
	ErrorCodeInsufficientScope      = "insufficient_scope"
	ErrorCodeMFARequired            = "mfa_required"
	ErrorCodeServerError            = "server_error"
	ErrorCodeTemporarilyUnavailable = "temporarily_unavailable"

	ErrorCodeNotFound              = "not_found"
	ErrorCodeExpired               = "expired"
	ErrorCodeAlreadyClaimed        = "already_claimed"
	ErrorCodeClaimRaceLost         = "claim_race_lost"
	ErrorCodeWeakPassword          = "weak_password"
	ErrorCodePasswordMismatch      = "password_mismatch"
	ErrorCodeAccountCreationFailed = "account_creation_failed"
	ErrorCodeForbidden             = "forbidden"
	ErrorCodeConflict              = "conflict"
	ErrorCodeUnauthorized          = "unauthorized"
)

// APIError is a non-2xx response. The server writes it with WriteError and
// the SDK returns it from every call.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes e as an ErrorResponse.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Description: description}
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidGrant = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidGrant,
		Description: "invalid credentials",
	}

	ErrUnsupportedGrantType = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeUnsupportedGrantType,
		Description: "grant type not supported",
	}

	ErrInvalidContentType = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "content-type must be application/x-www-form-urlencoded",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "An unexpected error occurred. Please try again.",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}
)

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// MFARequiredError is returned by SignIn when the account has TOTP enabled.
// Complete the sign in with Session.CompleteMFA.
type MFARequiredError struct {
	MFAToken  string
	ExpiresIn int
}

func (e *MFARequiredError) Error() string {
	return "mfa_required: a one-time code is required to complete sign in"
}

// WriteError writes the challenge as a 409 Conflict.
func (e *MFARequiredError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusConflict, MFARequiredResponse{
		Error:            ErrorCodeMFARequired,
		ErrorDescription: "Multi-factor authentication is required to complete sign in.",
		MFAToken:         e.MFAToken,
		ExpiresIn:        e.ExpiresIn,
	})
}

// parseErrorResponse turns a non-2xx response into an APIError, or an
// MFARequiredError for a 409 carrying a challenge.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusConflict {
		var mfa MFARequiredResponse
		if err := json.Unmarshal(body, &mfa); err == nil &&
			mfa.Error == ErrorCodeMFARequired && mfa.MFAToken != "" {
			return &MFARequiredError{MFAToken: mfa.MFAToken, ExpiresIn: mfa.ExpiresIn}
		}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
