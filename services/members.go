package services

import "context"

const RouteMembers = "/members"

type Member struct {
	ID           int64   `json:"id"`
	MembershipNo string  `json:"membershipNo"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	FullName     *string `json:"fullName"`
	Email        *string `json:"email"`
	NIC          *string `json:"nic"`
	IsActive     bool    `json:"isActive"`
}

// DisplayName prefers the full name, then first/last, then "Unknown".
func (m Member) DisplayName() string {
	return displayName(m.FullName, m.FirstName, m.LastName, "Unknown")
}

type MemberService struct {
	r Requester
}

func (s *MemberService) List(ctx context.Context, params ListParams) (*Page[Member], error) {
	p := params.normalized()
	path, err := withQuery(RouteMembers, struct {
		Page   int    `url:"page"`
		Size   int    `url:"size"`
		Search string `url:"search,omitempty"`
	}{p.Page, p.Size, p.Search})
	if err != nil {
		return nil, err
	}

	var page Page[Member]
	if err := s.r.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
