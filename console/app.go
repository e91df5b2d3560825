// Package console wires the session store, API client and services into the
// operations the command line offers.
package console

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/jrsteele09/temco-admin/apiclient"
	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/jrsteele09/temco-admin/services"
	"github.com/jrsteele09/temco-admin/session"
	"github.com/jrsteele09/temco-admin/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// adminRoles get the wildcard permission when the backend sends no explicit permissions
var adminRoles = []string{"ADMIN", "SUPER_ADMIN"}

type App struct {
	config        config.Config
	storage       storage.Storage
	session       *session.Store
	client        *apiclient.Client
	services      *services.Services
	logger        zerolog.Logger
	now           func() time.Time
	loginRequired atomic.Bool
}

type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     zerolog.Logger
	now        func() time.Time
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New builds the app on file storage in the configured data folder.
func New(cfg config.Config, opts ...Option) (*App, error) {
	st, err := storage.NewFileStorage(cfg.GetDataFolder())
	if err != nil {
		return nil, fmt.Errorf("open data folder: %w", err)
	}
	return NewWithStorage(cfg, st, opts...), nil
}

// NewWithStorage builds the app on st, which holds the session and the refresh token.
func NewWithStorage(cfg config.Config, st storage.Storage, opts ...Option) *App {
	o := options{logger: log.Logger, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		config:  cfg,
		storage: st,
		logger:  o.logger,
		now:     o.now,
	}
	a.session = session.NewStore(session.NewStoragePersister(st), session.WithLogger(o.logger))

	clientOpts := []apiclient.Option{
		apiclient.WithTimeout(cfg.GetAPITimeout()),
		apiclient.WithRedirector(apiclient.RedirectFunc(a.redirectToLogin)),
		apiclient.WithLogger(o.logger),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(o.httpClient))
	}
	a.client = apiclient.New(cfg.GetAPIURL(), a.session, st, clientOpts...)
	a.services = services.New(a.client)
	return a
}

func (a *App) Session() *session.Store {
	return a.session
}

func (a *App) Services() *services.Services {
	return a.services
}

// LoginRequired reports whether a request was rejected and the session could not be
// recovered, so the user has to sign in again.
func (a *App) LoginRequired() bool {
	return a.loginRequired.Load()
}

func (a *App) redirectToLogin() {
	a.loginRequired.Store(true)
	a.logger.Warn().Str("login_url", a.config.GetLoginURL()).Msg("Session expired, please log in again")
}

// LoginResult is the signed-in identity plus whether the backend wants a password change.
type LoginResult struct {
	User               session.Identity
	MustChangePassword bool
}

// Login signs in against the backend and starts a session.
func (a *App) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	resp, err := a.services.Auth.Login(ctx, services.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login response for %s has no access token", username)
	}

	user := IdentityFromAuth(resp)
	if err := storage.SetString(a.storage, apiclient.RefreshTokenKey, resp.RefreshToken); err != nil {
		a.logger.Warn().Err(err).Msg("Failed to store refresh token")
	}
	a.session.Login(user, resp.AccessToken)
	a.loginRequired.Store(false)

	a.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("Logged in")
	return &LoginResult{User: user, MustChangePassword: resp.MustChangePassword}, nil
}

// IdentityFromAuth maps an auth response onto a session identity.
func IdentityFromAuth(resp *services.AuthResponse) session.Identity {
	role := resp.PrimaryRole()
	permissions := slices.Clone(resp.Permissions)
	if len(permissions) == 0 && slices.Contains(adminRoles, role) {
		permissions = []string{session.WildcardPermission}
	}
	return session.Identity{
		ID:          resp.UserID,
		Username:    resp.Username,
		Email:       resp.Email,
		FullName:    resp.FullName,
		Role:        role,
		Permissions: permissions,
	}
}

// Logout tells the backend, then clears the local session whatever the backend said.
func (a *App) Logout(ctx context.Context) {
	if a.session.AccessToken() != "" {
		if err := a.services.Auth.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("Backend logout failed, clearing local session")
		}
	}
	a.session.Logout()
	if err := a.storage.Remove(apiclient.RefreshTokenKey); err != nil {
		a.logger.Warn().Err(err).Msg("Failed to remove refresh token")
	}
	a.logger.Info().Msg("Logged out")
}

// SyncProfile refreshes the signed-in identity from GET /auth/me. It does nothing while
// impersonating, since the backend only knows the operator.
func (a *App) SyncProfile(ctx context.Context) (*session.Identity, error) {
	if !a.session.IsAuthenticated() {
		return nil, errNoSession
	}
	if a.session.IsImpersonating() {
		return a.session.CurrentUser(), nil
	}

	resp, err := a.services.Auth.Me(ctx)
	if err != nil {
		return nil, err
	}

	patch := session.IdentityPatch{
		Username: &resp.Username,
		Email:    &resp.Email,
		FullName: &resp.FullName,
	}
	if role := resp.PrimaryRole(); role != "" {
		patch.Role = &role
	}
	if len(resp.Permissions) > 0 {
		patch.Permissions = &resp.Permissions
	}
	a.session.UpdateUser(patch)
	return a.session.CurrentUser(), nil
}
