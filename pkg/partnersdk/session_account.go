package partnersdk

import (
	"context"
	"net/http"
)

// Me returns the signed in account.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/me", nil, &out, http.StatusOK, ScopeProfileRead); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrollTOTP starts TOTP enrolment. The secret is active only after
// VerifyTOTP succeeds with a code from it.
func (s *Session) EnrollTOTP(ctx context.Context) (*TOTPEnrollResponse, error) {
	var out TOTPEnrollResponse
	if err := s.authJSON(ctx, http.MethodPost, "/v1/mfa/totp/enroll", nil, &out, http.StatusOK, ScopeMFAManage); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) VerifyTOTP(ctx context.Context, code string) error {
	return s.authJSON(ctx, http.MethodPost, "/v1/mfa/totp/verify", TOTPCodeRequest{Code: code}, nil, http.StatusNoContent, ScopeMFAManage)
}

func (s *Session) DisableTOTP(ctx context.Context, code string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/mfa/totp", TOTPCodeRequest{Code: code}, nil, http.StatusNoContent, ScopeMFAManage)
}
