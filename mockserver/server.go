// Package mockserver is an in-memory stand-in for the TEMCO bank API, for running
// the console without a backend.
package mockserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/jrsteele09/temco-admin/services"
	"github.com/jrsteele09/temco-admin/token"
	"github.com/jrsteele09/temco-admin/token/refresh"
	"github.com/jrsteele09/temco-admin/users"
	"github.com/rs/zerolog/log"
)

// Repos holds the storage the mock API runs on
type Repos struct {
	Users         users.UserRepo
	RefreshTokens refresh.Repo
}

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	handler   http.HandlerFunc
	routes    []string
	config    config.Config
	repos     Repos
	tokens    *token.Manager
	customers []services.Customer
	summary   services.DashboardSummary
}

func New(config config.Config, repos Repos) (*Server, error) {
	if repos.Users == nil {
		return nil, fmt.Errorf("[mockserver New] users repo is required")
	}
	if repos.RefreshTokens == nil {
		return nil, fmt.Errorf("[mockserver New] refresh token repo is required")
	}

	s := &Server{
		env:       config.GetEnv(),
		mux:       http.NewServeMux(),
		config:    config,
		repos:     repos,
		tokens:    token.New(config, repos.RefreshTokens, repos.Users),
		customers: defaultCustomers(),
		summary:   defaultSummary(),
	}

	if err := s.InitialiseSystem(); err != nil {
		return nil, fmt.Errorf("[mockserver New] failed to initialise the system: %w", err)
	}

	s.initRoutes()
	s.handler = ChainMiddleware(s.mux.ServeHTTP, s.RecoverMiddleware, s.RequestIDMiddleware, s.LoggingMiddleware, s.CorsMiddleware)
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

// InitialiseSystem seeds the development accounts unless they already exist
func (s *Server) InitialiseSystem() error {
	var missing []users.Account
	for _, a := range users.DefaultAccounts() {
		if _, err := s.repos.Users.GetByUsername(a.User.Username); err != nil {
			missing = append(missing, a)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := users.Seed(s.repos.Users, missing); err != nil {
		return err
	}
	for _, a := range missing {
		log.Info().Str("username", a.User.Username).Msg("Seeded mock account")
	}
	return nil
}
