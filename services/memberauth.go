package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	RouteMemberAuthNicHint            = "/member-auth/nic-hint"
	RouteMemberAuthMustChangePassword = "/member-auth/must-change-password"
	RouteMemberAuthChangePassword     = "/member-auth/change-password"
	RouteMemberAuthGenerateLogins     = "/member-auth/generate-logins"
)

type NicHintResponse struct {
	Hint  string `json:"hint"`
	Found bool   `json:"found"`
}

type MemberChangePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"-"`
}

func (r MemberChangePasswordRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.By(ValidatePasswordStrength)),
		validation.Field(&r.ConfirmPassword, validation.Required, validation.By(ValidateStringEquals(r.NewPassword))),
	))
}

type MemberAuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type GenerateLoginsResult struct {
	Success bool   `json:"success"`
	Created int    `json:"created"`
	Message string `json:"message"`
}

type MemberAuthService struct {
	r Requester
}

// NicHint returns the partial NIC shown on the member login page.
func (s *MemberAuthService) NicHint(ctx context.Context, email string) (*NicHintResponse, error) {
	if err := invalid(validation.Validate(email, validation.Required, is.Email)); err != nil {
		return nil, err
	}
	path, err := withQuery(RouteMemberAuthNicHint, struct {
		Email string `url:"email"`
	}{email})
	if err != nil {
		return nil, err
	}
	var resp NicHintResponse
	if err := s.r.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MemberAuthService) MustChangePassword(ctx context.Context, username string) (bool, error) {
	path, err := withQuery(RouteMemberAuthMustChangePassword, struct {
		Username string `url:"username"`
	}{username})
	if err != nil {
		return false, err
	}
	var resp struct {
		MustChangePassword bool `json:"mustChangePassword"`
	}
	if err := s.r.Get(ctx, path, &resp); err != nil {
		return false, err
	}
	return resp.MustChangePassword, nil
}

func (s *MemberAuthService) ChangePassword(ctx context.Context, req MemberChangePasswordRequest) (*MemberAuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var res MemberAuthResult
	if err := s.r.Post(ctx, RouteMemberAuthChangePassword, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GenerateLogins creates login accounts for every member without one.
func (s *MemberAuthService) GenerateLogins(ctx context.Context) (*GenerateLoginsResult, error) {
	var res GenerateLoginsResult
	if err := s.r.Post(ctx, RouteMemberAuthGenerateLogins, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
