// Package token issues and checks the mock API's credentials: HS256 access tokens and
// opaque single-use refresh tokens.
package token

import (
	"fmt"
	"time"

	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/token/jwt"
	"github.com/jrsteele09/temco-admin/token/refresh"
	"github.com/jrsteele09/temco-admin/users"
)

// Pair is what a successful login or refresh hands back
type Pair struct {
	AccessToken  string
	RefreshToken string
}

type Manager struct {
	creator      *jwt.Creator
	inspector    *jwt.Inspector
	refresh      *refresh.Manager
	userRepo     users.UserRepo
	revokedCache RevokedTokenCache
}

type ManagerOption func(*Manager)

func WithRevokedTokenCache(cache RevokedTokenCache) ManagerOption {
	return func(m *Manager) {
		m.revokedCache = cache
	}
}

func New(cfg config.TokenConfig, refreshRepo refresh.Repo, userRepo users.UserRepo, options ...ManagerOption) *Manager {
	m := &Manager{
		creator:      jwt.NewCreator(cfg),
		refresh:      refresh.NewManager(refreshRepo, cfg),
		userRepo:     userRepo,
		revokedCache: NewInMemoryRevokedTokenCache(func() time.Time { return jwt.NowTimeFunc() }),
	}

	for _, opt := range options {
		opt(m)
	}

	m.inspector = jwt.NewInspector(cfg, m.revokedCache)
	return m
}

// Issue creates an access token and a fresh refresh token for user
func (m *Manager) Issue(user *users.User) (*Pair, error) {
	access, err := m.creator.CreateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := m.refresh.Create(user.ID)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: *access, RefreshToken: *refreshToken}, nil
}

// Refresh exchanges a refresh token for a new pair. The old refresh token stops working.
func (m *Manager) Refresh(refreshToken string) (*users.User, *Pair, error) {
	rt, err := m.refresh.Validate(refreshToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := m.userRepo.GetByID(rt.UserID)
	if err != nil {
		_ = m.refresh.Delete(refreshToken)
		return nil, nil, errors.Wrapf(errors.ErrInvalidRefreshToken, "user %d", rt.UserID)
	}

	pair, err := m.Issue(user)
	if err != nil {
		return nil, nil, fmt.Errorf("reissue tokens: %w", err)
	}
	return user, pair, nil
}

// Authenticate verifies an access token and returns its user
func (m *Manager) Authenticate(accessToken string) (*users.User, *jwt.TokenIntrospection, error) {
	ti, err := m.inspector.Introspect(accessToken)
	if err != nil {
		return nil, ti, err
	}

	user, err := m.userRepo.GetByUsername(ti.Subject)
	if err != nil {
		return nil, ti, errors.Wrapf(errors.ErrInvalidToken, "unknown subject %q", ti.Subject)
	}
	return user, ti, nil
}

// Revoke signs out the holder of accessToken: the token is blacklisted and the
// user's refresh token removed.
func (m *Manager) Revoke(accessToken string) error {
	user, ti, err := m.Authenticate(accessToken)
	if err != nil {
		return err
	}
	m.revokedCache.Cleanup()
	if err := m.revokedCache.Add(ti.JTI, ti.Expiry); err != nil {
		return fmt.Errorf("revoke access token: %w", err)
	}
	return m.refresh.DeleteForUser(user.ID)
}
