package token_test

import (
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/token"
	"github.com/jrsteele09/temco-admin/token/jwt"
	"github.com/jrsteele09/temco-admin/token/refresh"
	refreshrepofake "github.com/jrsteele09/temco-admin/token/refresh/repofake"
	"github.com/jrsteele09/temco-admin/users"
	fakeuserrepo "github.com/jrsteele09/temco-admin/users/repofake"
	"github.com/stretchr/testify/require"
)

type testTokenConfig struct {
	config.Tokens
}

func (testTokenConfig) GetSigningSecret() []byte { return []byte("test-secret") }

func setupTestManager(t *testing.T) *token.Manager {
	t.Helper()

	userRepo := fakeuserrepo.NewFakeUserRepo()
	require.NoError(t, users.Seed(userRepo, users.DefaultAccounts()))
	return token.New(testTokenConfig{}, refreshrepofake.NewFakeRefreshTokenRepo(), userRepo)
}

func admin() *users.User {
	return &users.DefaultAccounts()[0].User
}

func TestIssue_AccessTokenClaims(t *testing.T) {
	m := setupTestManager(t)

	pair, err := m.Issue(admin())
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.Len(t, pair.RefreshToken, 64)

	claims := jwtlib.MapClaims{}
	_, err = jwtlib.ParseWithClaims(pair.AccessToken, claims, func(*jwtlib.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.Equal(t, "admin", claims["sub"])
	require.Equal(t, float64(1), claims["userId"])
	require.Equal(t, []any{"ADMIN"}, claims["roles"])
	require.NotEmpty(t, claims["jti"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), exp.Time, time.Minute)
}

func TestAuthenticate(t *testing.T) {
	m := setupTestManager(t)
	pair, err := m.Issue(admin())
	require.NoError(t, err)

	user, ti, err := m.Authenticate(pair.AccessToken)
	require.NoError(t, err)
	require.True(t, ti.Active)
	require.Equal(t, "admin", user.Username)
	require.Equal(t, []string{"ADMIN"}, ti.Roles)
	require.Equal(t, int64(1), ti.UserID)
}

func TestAuthenticate_Rejects(t *testing.T) {
	m := setupTestManager(t)
	pair, err := m.Issue(admin())
	require.NoError(t, err)

	_, _, err = m.Authenticate("")
	require.ErrorIs(t, err, errors.ErrInvalidToken)

	_, _, err = m.Authenticate("not.a.jwt")
	require.ErrorIs(t, err, errors.ErrInvalidToken)

	parts := strings.Split(pair.AccessToken, ".")
	_, _, err = m.Authenticate(parts[0] + "." + parts[1] + ".AAAA")
	require.ErrorIs(t, err, errors.ErrInvalidToken)

	other := token.New(config.Tokens{}, refreshrepofake.NewFakeRefreshTokenRepo(), fakeuserrepo.NewFakeUserRepo())
	foreign, err := other.Issue(admin())
	require.NoError(t, err)
	_, _, err = m.Authenticate(foreign.AccessToken)
	require.ErrorIs(t, err, errors.ErrInvalidToken)
}

func TestAuthenticate_Expired(t *testing.T) {
	m := setupTestManager(t)

	jwt.NowTimeFunc = func() time.Time { return time.Now().Add(-25 * time.Hour) }
	t.Cleanup(func() { jwt.NowTimeFunc = time.Now })
	pair, err := m.Issue(admin())
	require.NoError(t, err)
	jwt.NowTimeFunc = time.Now

	_, ti, err := m.Authenticate(pair.AccessToken)
	require.ErrorIs(t, err, errors.ErrTokenExpired)
	require.False(t, ti.Active)
}

func TestRefresh_RotatesToken(t *testing.T) {
	m := setupTestManager(t)
	first, err := m.Issue(admin())
	require.NoError(t, err)

	user, second, err := m.Refresh(first.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, "admin", user.Username)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)
	require.NotEmpty(t, second.AccessToken)

	_, _, err = m.Refresh(first.RefreshToken)
	require.ErrorIs(t, err, errors.ErrInvalidRefreshToken)

	_, _, err = m.Refresh(second.RefreshToken)
	require.NoError(t, err)
}

func TestRefresh_SingleTokenPerUser(t *testing.T) {
	m := setupTestManager(t)
	first, err := m.Issue(admin())
	require.NoError(t, err)
	_, err = m.Issue(admin())
	require.NoError(t, err)

	_, _, err = m.Refresh(first.RefreshToken)
	require.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
}

func TestRefresh_Expired(t *testing.T) {
	m := setupTestManager(t)

	refresh.NowTimeFunc = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	t.Cleanup(func() { refresh.NowTimeFunc = time.Now })
	pair, err := m.Issue(admin())
	require.NoError(t, err)
	refresh.NowTimeFunc = time.Now

	_, _, err = m.Refresh(pair.RefreshToken)
	require.ErrorIs(t, err, errors.ErrRefreshTokenExpired)

	_, _, err = m.Refresh(pair.RefreshToken)
	require.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
}

func TestRevoke(t *testing.T) {
	m := setupTestManager(t)
	pair, err := m.Issue(admin())
	require.NoError(t, err)

	require.NoError(t, m.Revoke(pair.AccessToken))

	_, _, err = m.Authenticate(pair.AccessToken)
	require.ErrorIs(t, err, errors.ErrInvalidToken)
	_, _, err = m.Refresh(pair.RefreshToken)
	require.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
}

func TestRevokedTokenCache_Cleanup(t *testing.T) {
	now := time.Now()
	cache := token.NewInMemoryRevokedTokenCache(func() time.Time { return now })

	require.NoError(t, cache.Add("old", now.Add(-time.Minute)))
	require.NoError(t, cache.Add("live", now.Add(time.Minute)))
	require.NoError(t, cache.Add("soon", now.Add(2*time.Minute)))
	require.Error(t, cache.Add("", now.Add(time.Minute)))
	require.False(t, cache.IsRevoked("old"), "already expired tokens are not stored")

	now = now.Add(90 * time.Second)
	require.False(t, cache.IsRevoked("live"))
	require.True(t, cache.IsRevoked("soon"))
	require.Equal(t, 1, cache.Cleanup())
	require.Zero(t, cache.Cleanup())
}
