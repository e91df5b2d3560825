package console_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/jrsteele09/temco-admin/apiclient"
	"github.com/jrsteele09/temco-admin/console"
	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/internal/utils"
	"github.com/jrsteele09/temco-admin/mockserver"
	"github.com/jrsteele09/temco-admin/services"
	"github.com/jrsteele09/temco-admin/session"
	"github.com/jrsteele09/temco-admin/storage"
	refreshrepofake "github.com/jrsteele09/temco-admin/token/refresh/repofake"
	fakeuserrepo "github.com/jrsteele09/temco-admin/users/repofake"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	config.Config
	apiURL string
}

func (testConfig) GetEnv() string      { return "TEST" }
func (c testConfig) GetAPIURL() string { return c.apiURL }

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type testFixture struct {
	app     *console.App
	storage *storage.MemoryStorage
	server  *httptest.Server
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	srv, err := mockserver.New(testConfig{Config: config.New()}, mockserver.Repos{
		Users:         fakeuserrepo.NewFakeUserRepo(),
		RefreshTokens: refreshrepofake.NewFakeRefreshTokenRepo(),
	})
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	return newFixture(t, ts, ts.URL+mockserver.RoutePrefix)
}

func newFixture(t *testing.T, ts *httptest.Server, apiURL string) *testFixture {
	t.Helper()
	st := storage.NewMemoryStorage()
	cfg := testConfig{Config: config.New(), apiURL: apiURL}
	return &testFixture{
		app:     console.NewWithStorage(cfg, st, console.WithClock(func() time.Time { return fixedNow })),
		storage: st,
		server:  ts,
	}
}

func TestLogin_Admin(t *testing.T) {
	f := setupTestFixture(t)

	res, err := f.app.Login(context.Background(), "admin", "Admin@123")
	require.NoError(t, err)
	require.False(t, res.MustChangePassword)
	require.Equal(t, session.Identity{
		ID:          1,
		Username:    "admin",
		Email:       "admin@temcobank.lk",
		FullName:    "System Administrator",
		Role:        "ADMIN",
		Permissions: []string{"*"},
	}, res.User)

	require.True(t, f.app.Session().IsAuthenticated())
	require.NotEmpty(t, f.app.Session().AccessToken())
	refreshToken, err := storage.GetString(f.storage, apiclient.RefreshTokenKey)
	require.NoError(t, err)
	require.NotEmpty(t, refreshToken)

	_, err = f.storage.Get(session.StorageKey)
	require.NoError(t, err)
}

func TestLogin_CashierHasNoWildcard(t *testing.T) {
	f := setupTestFixture(t)

	res, err := f.app.Login(context.Background(), "cashier", "Cashier@123")
	require.NoError(t, err)
	require.Equal(t, "CASHIER", res.User.Role)
	require.Empty(t, res.User.Permissions)
	require.False(t, f.app.Session().HasPermission("users.view"))
}

func TestLogin_WrongPassword(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.app.Login(context.Background(), "admin", "nope")
	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid username or password", apiErr.Message)
	require.False(t, f.app.Session().IsAuthenticated())
}

func TestIdentityFromAuth(t *testing.T) {
	id := console.IdentityFromAuth(&services.AuthResponse{UserID: 7, RoleName: "SUPER_ADMIN"})
	require.Equal(t, "SUPER_ADMIN", id.Role)
	require.Equal(t, []string{"*"}, id.Permissions)

	id = console.IdentityFromAuth(&services.AuthResponse{Roles: []string{"ADMIN"}, Permissions: []string{"users.view"}})
	require.Equal(t, []string{"users.view"}, id.Permissions)
}

func TestLogout_ClearsEverything(t *testing.T) {
	f := setupTestFixture(t)
	_, err := f.app.Login(context.Background(), "admin", "Admin@123")
	require.NoError(t, err)

	f.app.Logout(context.Background())

	require.False(t, f.app.Session().IsAuthenticated())
	require.Nil(t, f.app.Session().CurrentUser())
	require.Empty(t, f.app.Session().AccessToken())
	refreshToken, err := storage.GetString(f.storage, apiclient.RefreshTokenKey)
	require.NoError(t, err)
	require.Empty(t, refreshToken)
}

func TestLogout_BackendDown(t *testing.T) {
	f := setupTestFixture(t)
	_, err := f.app.Login(context.Background(), "admin", "Admin@123")
	require.NoError(t, err)
	f.server.Close()

	f.app.Logout(context.Background())
	require.False(t, f.app.Session().IsAuthenticated())
}

func TestExpiredSession_SetsLoginRequired(t *testing.T) {
	f := setupTestFixture(t)
	f.app.Session().Login(session.Identity{ID: 1, Username: "admin"}, "stale")

	_, err := f.app.Services().Auth.Me(context.Background())
	require.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
	require.True(t, f.app.LoginRequired())
	require.False(t, f.app.Session().IsAuthenticated())

	_, err = f.app.Login(context.Background(), "admin", "Admin@123")
	require.NoError(t, err)
	require.False(t, f.app.LoginRequired())
}

func TestSyncProfile(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.app.SyncProfile(context.Background())
	require.ErrorIs(t, err, errors.ErrNoSession)

	_, err = f.app.Login(context.Background(), "admin", "Admin@123")
	require.NoError(t, err)
	f.app.Session().UpdateUser(session.IdentityPatch{FullName: utils.Ptr("Stale Name")})

	user, err := f.app.SyncProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "System Administrator", user.FullName)
	require.Equal(t, []string{"*"}, user.Permissions)
}

func kamal() services.Member {
	return services.Member{
		ID:           1,
		MembershipNo: "TM-0001",
		FullName:     utils.Ptr("Kamal Perera"),
		Email:        utils.Ptr("kamal.perera@gmail.com"),
	}
}

func TestImpersonateMember(t *testing.T) {
	f := setupTestFixture(t)
	_, err := f.app.Login(context.Background(), "admin", "Admin@123")
	require.NoError(t, err)
	token := f.app.Session().AccessToken()

	portal, err := f.app.ImpersonateMember(kamal())
	require.NoError(t, err)

	u, err := url.Parse(portal)
	require.NoError(t, err)
	require.Equal(t, "my.temcobank.com", u.Host)
	require.Equal(t, "/dashboard", u.Path)
	q := u.Query()
	require.Equal(t, "true", q.Get("impersonate"))
	require.Equal(t, "1", q.Get("memberId"))
	require.Equal(t, "TM-0001", q.Get("memberNo"))
	require.Equal(t, "kamal.perera@gmail.com", q.Get("email"))
	require.Equal(t, "Kamal Perera", q.Get("name"))
	require.Equal(t, "1", q.Get("adminId"))
	require.Equal(t, "admin", q.Get("adminUser"))
	require.Equal(t, "1767323045000", q.Get("ts"))

	user := f.app.Session().CurrentUser()
	require.Equal(t, "MEMBER", user.Role)
	require.Equal(t, "kamal.perera@gmail.com", user.Username)
	require.Equal(t, []string{"member.*"}, user.Permissions)
	require.True(t, f.app.Session().IsImpersonating())
	require.Equal(t, token, f.app.Session().AccessToken())

	_, err = f.app.ImpersonateMember(kamal())
	require.ErrorIs(t, err, errors.ErrAlreadyImpersonating)

	restored, err := f.app.StopImpersonation()
	require.NoError(t, err)
	require.Equal(t, "admin", restored.Username)
	require.Equal(t, "ADMIN", restored.Role)
	require.Equal(t, []string{"*"}, restored.Permissions)
	require.Empty(t, restored.Email)

	_, err = f.app.StopImpersonation()
	require.ErrorIs(t, err, errors.ErrNotImpersonating)
}

func TestImpersonateMember_RequiresSession(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.app.ImpersonateMember(kamal())
	require.ErrorIs(t, err, errors.ErrNoSession)
}

func TestMemberIdentity_UsesMembershipNoWithoutEmail(t *testing.T) {
	id := console.MemberIdentity(services.Member{ID: 10, MembershipNo: "TM-0010", FirstName: utils.Ptr("Nadeesha")})
	require.Equal(t, "TM-0010", id.Username)
	require.Equal(t, "Nadeesha", id.FullName)
	require.Empty(t, id.Email)
}

// The mock server has no /members endpoint, so listings come from bundled data
// only when the backend is down; a 404 is not "down".
func TestMembers_Fallback(t *testing.T) {
	f := setupTestFixture(t)
	_, err := f.app.Members(context.Background(), services.DefaultListParams())
	require.True(t, apiclient.IsStatus(err, http.StatusNotFound))

	down := newFixture(t, nil, "http://127.0.0.1:1"+mockserver.RoutePrefix)
	res, err := down.app.Members(context.Background(), services.ListParams{Search: "silva"})
	require.NoError(t, err)
	require.True(t, res.Fallback)
	require.Len(t, res.Data.Content, 1)

	member, fromFallback, err := down.app.FindMember(context.Background(), 12)
	require.NoError(t, err)
	require.True(t, fromFallback)
	require.Equal(t, "TM-0012", member.MembershipNo)

	_, _, err = down.app.FindMember(context.Background(), 999)
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestLists_FallbackWhenDown(t *testing.T) {
	f := newFixture(t, nil, "http://127.0.0.1:1"+mockserver.RoutePrefix)
	ctx := context.Background()

	users, err := f.app.Users(ctx, services.DefaultListParams())
	require.NoError(t, err)
	require.True(t, users.Fallback)
	require.NotEmpty(t, users.Data.Content)

	roles, err := f.app.Roles(ctx, services.DefaultListParams())
	require.NoError(t, err)
	require.True(t, roles.Fallback)

	logs, err := f.app.ActivityLogs(ctx, services.ListParams{Action: "LOGIN"})
	require.NoError(t, err)
	require.True(t, logs.Fallback)
	require.Len(t, logs.Data.Content, 1)
}
