package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	RouteAuthLogin          = "/auth/login"
	RouteAuthLogout         = "/auth/logout"
	RouteAuthMe             = "/auth/me"
	RouteAuthChangePassword = "/auth/change-password"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	))
}

// AuthResponse is returned by login, refresh and me. The backend sends either a
// roleName/permissions pair or a roles list.
type AuthResponse struct {
	UserID             int64    `json:"userId"`
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	FullName           string   `json:"fullName"`
	RoleName           string   `json:"roleName,omitempty"`
	Roles              []string `json:"roles,omitempty"`
	Permissions        []string `json:"permissions,omitempty"`
	AccessToken        string   `json:"accessToken,omitempty"`
	RefreshToken       string   `json:"refreshToken,omitempty"`
	MustChangePassword bool     `json:"mustChangePassword"`
}

// PrimaryRole is roleName when set, else the first of roles.
func (r AuthResponse) PrimaryRole() string {
	if r.RoleName != "" {
		return r.RoleName
	}
	if len(r.Roles) > 0 {
		return r.Roles[0]
	}
	return ""
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"-"`
}

func (r ChangePasswordRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.By(ValidatePasswordStrength)),
		validation.Field(&r.ConfirmPassword, validation.Required, validation.By(ValidateStringEquals(r.NewPassword))),
	))
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthService struct {
	r Requester
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := s.r.Post(ctx, RouteAuthLogin, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.r.Post(ctx, RouteAuthLogout, nil, nil)
}

func (s *AuthService) Me(ctx context.Context) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.r.Get(ctx, RouteAuthMe, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.r.Post(ctx, RouteAuthChangePassword, req, nil)
}
