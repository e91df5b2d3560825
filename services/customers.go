package services

import (
	"context"
	"fmt"
)

const (
	RouteCustomers        = "/customers"
	RouteDashboardSummary = "/dashboard/summary"
)

type Customer struct {
	ID                  int64  `json:"id"`
	StudentID           string `json:"studentId"`
	NIC                 string `json:"nic"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	MobileNo            string `json:"mobileNo"`
	DateOfBirth         string `json:"dateOfBirth"`
	CustomerStatus      string `json:"customerStatus"`
	RegistrationDate    string `json:"registrationDate"`
	BankName            string `json:"bankName"`
	EnrollmentCount     int    `json:"enrollmentCount"`
	OutstandingDueCount int    `json:"outstandingDueCount"`
}

type DashboardSummary struct {
	TotalCustomers     int64 `json:"totalCustomers"`
	ActiveEnrollments  int64 `json:"activeEnrollments"`
	PendingPayments    int64 `json:"pendingPayments"`
	OverduePayments    int64 `json:"overduePayments"`
	TodayCollections   int64 `json:"todayCollections"`
	MonthlyCollections int64 `json:"monthlyCollections"`
}

type CustomerService struct {
	r Requester
}

func (s *CustomerService) List(ctx context.Context, params ListParams) (*Page[Customer], error) {
	p := params.normalized()
	path, err := withQuery(RouteCustomers, struct {
		Page   int    `url:"page"`
		Size   int    `url:"size"`
		Search string `url:"search,omitempty"`
	}{p.Page, p.Size, p.Search})
	if err != nil {
		return nil, err
	}

	var page Page[Customer]
	if err := s.r.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	if err := s.r.Get(ctx, fmt.Sprintf("%s/%d", RouteCustomers, id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

type DashboardService struct {
	r Requester
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var sum DashboardSummary
	if err := s.r.Get(ctx, RouteDashboardSummary, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}
