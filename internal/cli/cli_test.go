package cli_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrsteele09/temco-admin/console"
	"github.com/jrsteele09/temco-admin/internal/cli"
	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/jrsteele09/temco-admin/mockserver"
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

type testFixture struct {
	app *console.App
}

func setupTestFixture(t *testing.T, apiURL string) *testFixture {
	t.Helper()
	cfg := testConfig{Config: config.New(), apiURL: apiURL}
	return &testFixture{app: console.NewWithStorage(cfg, storage.NewMemoryStorage())}
}

func setupMockServer(t *testing.T) string {
	t.Helper()
	srv, err := mockserver.New(testConfig{Config: config.New()}, mockserver.Repos{
		Users:         fakeuserrepo.NewFakeUserRepo(),
		RefreshTokens: refreshrepofake.NewFakeRefreshTokenRepo(),
	})
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts.URL + mockserver.RoutePrefix
}

func (f *testFixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(func() (*console.App, error) { return f.app, nil })
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	root := cli.NewRootCmd(nil)
	for _, path := range [][]string{
		{"login"}, {"logout"}, {"whoami"}, {"password"},
		{"users", "list"},
		{"roles", "list"}, {"roles", "show"}, {"roles", "create"}, {"roles", "delete"},
		{"audit", "activity"}, {"audit", "changes"},
		{"members", "list"},
		{"impersonate"}, {"impersonate", "stop"},
		{"email", "templates"}, {"email", "send"},
		{"customers", "list"}, {"customers", "show"},
		{"dashboard"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		require.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestLoginWhoamiLogout(t *testing.T) {
	f := setupTestFixture(t, setupMockServer(t))

	out, err := f.run(t, "Admin@123\n", "login", "-u", "admin")
	require.NoError(t, err)
	require.Contains(t, out, "Logged in as System Administrator (ADMIN)")

	out, err = f.run(t, "", "whoami", "--sync")
	require.NoError(t, err)
	require.Contains(t, out, "System Administrator (SA)")
	require.Contains(t, out, "admin@temcobank.lk")

	out, err = f.run(t, "", "logout")
	require.NoError(t, err)
	require.Contains(t, out, "Logged out")

	out, err = f.run(t, "", "whoami")
	require.NoError(t, err)
	require.Contains(t, out, "Not logged in")
}

func TestLogin_WrongPassword(t *testing.T) {
	f := setupTestFixture(t, setupMockServer(t))

	_, err := f.run(t, "", "login", "-u", "admin", "-p", "wrong")
	require.ErrorContains(t, err, "Invalid username or password")
}

func TestDashboardAndCustomers(t *testing.T) {
	f := setupTestFixture(t, setupMockServer(t))

	out, err := f.run(t, "", "dashboard")
	require.NoError(t, err)
	require.Contains(t, out, "1250")

	out, err = f.run(t, "", "customers", "list", "--search", "silva")
	require.NoError(t, err)
	require.Contains(t, out, "Nimal Silva")
	require.NotContains(t, out, "Kamal Perera")

	out, err = f.run(t, "", "customers", "show", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Sunil Fernando")

	_, err = f.run(t, "", "customers", "show", "abc")
	require.ErrorContains(t, err, `invalid id "abc"`)
}

func TestListsShowFallbackBanner(t *testing.T) {
	f := setupTestFixture(t, "http://127.0.0.1:1"+mockserver.RoutePrefix)

	out, err := f.run(t, "", "members", "list", "--search", "perera")
	require.NoError(t, err)
	require.Contains(t, out, "showing fallback data")
	require.Contains(t, out, "TM-0001")

	out, err = f.run(t, "", "roles", "list")
	require.NoError(t, err)
	require.Contains(t, out, "showing fallback data")
	require.Contains(t, out, "FINANCE_CONTROLLER")
}

func TestImpersonateAndStop(t *testing.T) {
	f := setupTestFixture(t, setupMockServer(t))
	_, err := f.run(t, "", "login", "-u", "admin", "-p", "Admin@123")
	require.NoError(t, err)

	// The mock server has no member endpoints, so lookups fail with a 404.
	_, err = f.run(t, "", "impersonate", "1")
	require.Error(t, err)

	_, err = f.run(t, "", "impersonate", "stop")
	require.ErrorContains(t, err, "not impersonating")
}

func TestRoleCreate_ValidationBeforeRequest(t *testing.T) {
	f := setupTestFixture(t, "http://127.0.0.1:1"+mockserver.RoutePrefix)

	_, err := f.run(t, "", "roles", "create", "--name", "Teller")
	require.ErrorContains(t, err, "validation failed")
}
