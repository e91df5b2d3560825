// Package services declares the admin API resources and forwards calls to the API
// client. Errors from the client are returned unchanged; request validation happens
// here, before anything is sent.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/jrsteele09/temco-admin/apiclient"
)

// Requester is the subset of the API client the services use.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

var _ Requester = (*apiclient.Client)(nil)

const (
	DefaultPage     = 0
	DefaultPageSize = 20
	MaxPageSize     = 1000

	// FilterAll means "no filter" for status-style filters.
	FilterAll = "all"
)

// Page is the paginated envelope returned by every list endpoint. Pages are zero based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first,omitempty"`
	Last          bool  `json:"last,omitempty"`
}

// ListParams are the common list query parameters.
type ListParams struct {
	Page   int    `url:"page"`
	Size   int    `url:"size"`
	Search string `url:"search,omitempty"`
	Status string `url:"status,omitempty"`
	Action string `url:"action,omitempty"`
}

// DefaultListParams returns the first page at the default size.
func DefaultListParams() ListParams {
	return ListParams{Page: DefaultPage, Size: DefaultPageSize}
}

func (p ListParams) normalized() ListParams {
	if p.Page < 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	p.Search = strings.TrimSpace(p.Search)
	if strings.EqualFold(p.Status, FilterAll) {
		p.Status = ""
	}
	if strings.EqualFold(p.Action, FilterAll) {
		p.Action = ""
	}
	return p
}

// withQuery appends the encoded parameters to path.
func withQuery(path string, params any) (string, error) {
	values, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("encode query for %s: %w", path, err)
	}
	if len(values) == 0 {
		return path, nil
	}
	return path + "?" + values.Encode(), nil
}

// Services bundles every resource service around one requester.
type Services struct {
	Auth       *AuthService
	Users      *UserService
	Roles      *RoleService
	Audit      *AuditService
	Members    *MemberService
	Email      *EmailService
	MemberAuth *MemberAuthService
	Customers  *CustomerService
	Dashboard  *DashboardService
}

func New(r Requester) *Services {
	return &Services{
		Auth:       &AuthService{r: r},
		Users:      &UserService{r: r},
		Roles:      &RoleService{r: r},
		Audit:      &AuditService{r: r},
		Members:    &MemberService{r: r},
		Email:      &EmailService{r: r},
		MemberAuth: &MemberAuthService{r: r},
		Customers:  &CustomerService{r: r},
		Dashboard:  &DashboardService{r: r},
	}
}
