package partnersdk

import (
	"context"
	"net/http"
	"net/url"
)

func (s *Session) Organization(ctx context.Context) (*OrganizationResponse, error) {
	var out OrganizationResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/organization", nil, &out, http.StatusOK, ScopeProfileRead); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateOrganization(ctx context.Context, displayName string) (*OrganizationResponse, error) {
	var out OrganizationResponse
	req := UpdateOrganizationRequest{DisplayName: displayName}
	if err := s.authJSON(ctx, http.MethodPatch, "/v1/organization", req, &out, http.StatusOK, ScopeOrgWrite); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Staff(ctx context.Context) (*StaffResponse, error) {
	var out StaffResponse
	if err := s.authJSON(ctx, http.MethodGet, "/v1/staff", nil, &out, http.StatusOK, ScopeProfileRead); err != nil {
		return nil, err
	}
	return &out, nil
}

// InviteStaff emails an invitation and returns the pending member.
func (s *Session) InviteStaff(ctx context.Context, email string, role Role) (*StaffMember, error) {
	var out StaffMember
	req := InviteStaffRequest{Email: email, Role: role}
	if err := s.authJSON(ctx, http.MethodPost, "/v1/staff/invite", req, &out, http.StatusCreated, ScopeStaffWrite); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveStaff deactivates an account and signs it out everywhere.
func (s *Session) RemoveStaff(ctx context.Context, accountID string) error {
	return s.authJSON(ctx, http.MethodDelete, "/v1/staff/"+url.PathEscape(accountID), nil, nil, http.StatusNoContent, ScopeStaffWrite)
}
