package mockserver

import (
	"net/http"
)

func (s *Server) initRoutes() {
	// AUTH
	s.RegisterRouteFunc("POST "+RoutePrefix+RouteAuthLogin, s.LoginHandler())
	s.RegisterRouteFunc("GET "+RoutePrefix+RouteAuthMe, s.MeHandler())
	s.RegisterRouteFunc("POST "+RoutePrefix+RouteAuthLogout, s.LogoutHandler())
	s.RegisterRouteFunc("POST "+RoutePrefix+RouteAuthRefresh, s.RefreshHandler())

	// CUSTOMERS
	s.RegisterRouteFunc("GET "+RoutePrefix+RouteCustomers, s.CustomersListHandler())
	s.RegisterRouteFunc("GET "+RoutePrefix+RouteCustomer, s.CustomerHandler())

	// DASHBOARD
	s.RegisterRouteFunc("GET "+RoutePrefix+RouteDashboardSummary, s.DashboardSummaryHandler())

	s.RegisterRouteFunc("/", s.NotFoundHandler())
}

func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	}
}
