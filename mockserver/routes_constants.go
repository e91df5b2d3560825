package mockserver

import "github.com/jrsteele09/temco-admin/internal/config"

// Route path constants, relative to the API prefix
const (
	RoutePrefix = config.APIPathPrefix

	// Auth Routes
	RouteAuthLogin   = "/auth/login"
	RouteAuthLogout  = "/auth/logout"
	RouteAuthMe      = "/auth/me"
	RouteAuthRefresh = "/auth/refresh"

	// Customer Routes
	RouteCustomers = "/customers"
	RouteCustomer  = "/customers/{id}"

	// Dashboard Routes
	RouteDashboardSummary = "/dashboard/summary"
)
