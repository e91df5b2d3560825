package services

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

const RouteRoles = "/roles"

type Role struct {
	ID              int64  `json:"id"`
	RoleCode        string `json:"roleCode"`
	RoleName        string `json:"roleName"`
	Description     string `json:"description"`
	UserCount       int    `json:"userCount"`
	PermissionCount int    `json:"permissionCount"`
	IsActive        bool   `json:"isActive"`
}

// RoleRequest is the body of role create and update.
type RoleRequest struct {
	RoleCode    string `json:"roleCode"`
	RoleName    string `json:"roleName"`
	Description string `json:"description,omitempty"`
}

func (r RoleRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.RoleCode, validation.Required, validation.Length(2, 50)),
		validation.Field(&r.RoleName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 500)),
	))
}

type RoleService struct {
	r Requester
}

func (s *RoleService) List(ctx context.Context, params ListParams) (*Page[Role], error) {
	p := params.normalized()
	path, err := withQuery(RouteRoles, struct {
		Page   int    `url:"page"`
		Size   int    `url:"size"`
		Search string `url:"search,omitempty"`
	}{p.Page, p.Size, p.Search})
	if err != nil {
		return nil, err
	}

	var page Page[Role]
	if err := s.r.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *RoleService) Get(ctx context.Context, id int64) (*Role, error) {
	var role Role
	if err := s.r.Get(ctx, rolePath(id), &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *RoleService) Create(ctx context.Context, req RoleRequest) (*Role, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var role Role
	if err := s.r.Post(ctx, RouteRoles, req, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *RoleService) Update(ctx context.Context, id int64, req RoleRequest) (*Role, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var role Role
	if err := s.r.Put(ctx, rolePath(id), req, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, rolePath(id), nil)
}

func rolePath(id int64) string {
	return fmt.Sprintf("%s/%d", RouteRoles, id)
}
