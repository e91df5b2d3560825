package services

import "context"

const RouteUsers = "/users"

type User struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	RoleName    string  `json:"roleName"`
	IsActive    bool    `json:"isActive"`
	LastLoginAt *string `json:"lastLoginAt"`
	CreatedAt   *string `json:"createdAt"`
}

// DisplayName prefers the full name, then first/last, then the username.
func (u User) DisplayName() string {
	return displayName(u.FullName, u.FirstName, u.LastName, u.Username)
}

type UserService struct {
	r Requester
}

// List returns a page of users; Status "all" or "" means every status.
func (s *UserService) List(ctx context.Context, params ListParams) (*Page[User], error) {
	p := params.normalized()
	path, err := withQuery(RouteUsers, struct {
		Page   int    `url:"page"`
		Size   int    `url:"size"`
		Search string `url:"search,omitempty"`
		Status string `url:"status,omitempty"`
	}{p.Page, p.Size, p.Search, p.Status})
	if err != nil {
		return nil, err
	}

	var page Page[User]
	if err := s.r.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
