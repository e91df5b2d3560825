package session_test

import (
	"errors"
	"testing"

	"github.com/jrsteele09/temco-admin/internal/utils"
	"github.com/jrsteele09/temco-admin/session"
	"github.com/jrsteele09/temco-admin/storage"
	"github.com/stretchr/testify/require"
)

const testToken = "access-token-1"

func operator() session.Identity {
	return session.Identity{
		ID:          1,
		Username:    "admin",
		Email:       "admin@temcobank.lk",
		FullName:    "System Administrator",
		Role:        "SUPER_ADMIN",
		Permissions: []string{"users.view", "users.edit", "audit.view"},
	}
}

func member() session.Identity {
	return session.Identity{
		ID:          42,
		Username:    "kamal@email.com",
		Email:       "kamal@email.com",
		FullName:    "Kamal Perera",
		Role:        "MEMBER",
		Permissions: []string{"member.*"},
	}
}

// recordingPersister counts saves and can be told to fail
type recordingPersister struct {
	saved   []session.State
	saveErr error
	loadErr error
	loaded  session.State
}

func (r *recordingPersister) Load() (session.State, error) { return r.loaded, r.loadErr }

func (r *recordingPersister) Save(s session.State) error {
	r.saved = append(r.saved, s)
	return r.saveErr
}

func TestNewStore_StartsEmpty(t *testing.T) {
	s := session.NewStore(nil)

	require.Nil(t, s.CurrentUser())
	require.Empty(t, s.AccessToken())
	require.False(t, s.IsAuthenticated())
	require.False(t, s.IsImpersonating())
}

func TestLogin_ThenLogout_IsEmpty(t *testing.T) {
	s := session.NewStore(nil)

	s.Login(operator(), testToken)
	require.True(t, s.IsAuthenticated())
	require.Equal(t, testToken, s.AccessToken())
	require.Equal(t, "admin", s.CurrentUser().Username)

	s.Logout()
	snap := s.Snapshot()
	require.Nil(t, snap.User)
	require.Empty(t, snap.Token)
	require.False(t, snap.Authenticated)
	require.Nil(t, snap.Impersonation)
}

func TestLogin_OverwritesPreviousSession(t *testing.T) {
	s := session.NewStore(nil)
	s.Login(operator(), testToken)
	s.StartImpersonation(member(), operator())

	cashier := session.Identity{ID: 2, Username: "cashier", Role: "CASHIER"}
	s.Login(cashier, "other-token")

	snap := s.Snapshot()
	require.Equal(t, int64(2), snap.User.ID)
	require.Equal(t, "other-token", snap.Token)
	require.Nil(t, snap.Impersonation)
}

func TestLogin_EmptyTokenIsNotAuthenticated(t *testing.T) {
	s := session.NewStore(nil)
	s.Login(operator(), "")

	require.NotNil(t, s.CurrentUser())
	require.False(t, s.IsAuthenticated())
	require.False(t, s.Snapshot().Authenticated)

	p := &recordingPersister{}
	s = session.NewStore(p)
	s.Login(operator(), "")
	require.False(t, p.saved[len(p.saved)-1].Authenticated, "persisted flag follows the token")
}

func TestUpdateUser_MergesSetFields(t *testing.T) {
	s := session.NewStore(nil)
	s.Login(operator(), testToken)

	s.UpdateUser(session.IdentityPatch{
		FullName: utils.Ptr("Sys Admin"),
		Email:    utils.Ptr("root@temcobank.lk"),
	})

	u := s.CurrentUser()
	require.Equal(t, "Sys Admin", u.FullName)
	require.Equal(t, "root@temcobank.lk", u.Email)
	require.Equal(t, "admin", u.Username, "unset fields are kept")
	require.Equal(t, operator().Permissions, u.Permissions)
	require.Equal(t, testToken, s.AccessToken())
}

func TestUpdateUser_NoIdentityIsNoop(t *testing.T) {
	p := &recordingPersister{}
	s := session.NewStore(p)

	s.UpdateUser(session.IdentityPatch{FullName: utils.Ptr("ghost")})

	require.Nil(t, s.CurrentUser())
	require.Empty(t, p.saved, "a no-op must not write")
}

func TestUpdateUser_ReplacesPermissions(t *testing.T) {
	s := session.NewStore(nil)
	s.Login(operator(), testToken)

	perms := []string{"roles.view"}
	s.UpdateUser(session.IdentityPatch{Permissions: &perms})
	perms[0] = "mutated"

	require.Equal(t, []string{"roles.view"}, s.CurrentUser().Permissions)
}

func TestImpersonation_StartThenStop_RestoresOperator(t *testing.T) {
	s := session.NewStore(nil)
	op := operator()
	s.Login(op, testToken)

	s.StartImpersonation(member(), op)
	require.True(t, s.IsImpersonating())
	require.Equal(t, int64(42), s.CurrentUser().ID)
	require.Equal(t, testToken, s.AccessToken(), "impersonation does not swap the token")

	link := s.Snapshot().Impersonation
	require.Equal(t, &session.OperatorRef{ID: 1, Username: "admin", FullName: "System Administrator"}, link)

	s.StopImpersonation()
	require.False(t, s.IsImpersonating())

	u := s.CurrentUser()
	require.Equal(t, op.ID, u.ID)
	require.Equal(t, op.Username, u.Username)
	require.Equal(t, op.FullName, u.FullName)
	require.Empty(t, u.Email, "email is not part of the operator snapshot")
	require.Equal(t, session.OperatorRole, u.Role)
	require.Equal(t, []string{session.WildcardPermission}, u.Permissions)
	require.True(t, s.IsAuthenticated())
}

func TestImpersonation_RestoresCapturedOperatorNotCurrentLogin(t *testing.T) {
	s := session.NewStore(nil)
	s.Login(operator(), testToken)

	other := session.Identity{ID: 7, Username: "auditor", FullName: "Audit Lead"}
	s.StartImpersonation(member(), other)
	s.StopImpersonation()

	u := s.CurrentUser()
	require.Equal(t, int64(7), u.ID)
	require.Equal(t, "auditor", u.Username)
}

func TestImpersonation_SwitchingTargetKeepsFirstOperator(t *testing.T) {
	s := session.NewStore(nil)
	op := operator()
	s.Login(op, testToken)

	s.StartImpersonation(member(), op)
	second := session.Identity{ID: 43, Username: "TM-0043", Role: "MEMBER", Permissions: []string{"member.*"}}
	s.StartImpersonation(second, *s.CurrentUser())
	require.Equal(t, int64(43), s.CurrentUser().ID)
	require.Equal(t, op.Username, s.Snapshot().Impersonation.Username)

	s.StopImpersonation()
	require.Equal(t, op.ID, s.CurrentUser().ID)
	require.Equal(t, op.Username, s.CurrentUser().Username)
	require.False(t, s.IsImpersonating())
}

func TestImpersonation_LinkCarriesNoPermissions(t *testing.T) {
	s := session.NewStore(nil)
	s.Login(operator(), testToken)
	s.StartImpersonation(member(), operator())

	require.False(t, s.HasPermission("users.edit"), "operator permissions must not leak")
	require.False(t, s.HasPermission("member.view"), "no prefix matching")
	require.True(t, s.HasPermission("member.*"))
}

func TestStopImpersonation_WithoutLinkIsNoop(t *testing.T) {
	p := &recordingPersister{}
	s := session.NewStore(p)
	s.Login(operator(), testToken)
	saves := len(p.saved)

	s.StopImpersonation()

	require.Equal(t, "SUPER_ADMIN", s.CurrentUser().Role)
	require.Equal(t, "admin@temcobank.lk", s.CurrentUser().Email)
	require.Len(t, p.saved, saves)
}

func TestSetAccessToken_KeepsIdentityAndLink(t *testing.T) {
	s := session.NewStore(nil)
	s.Login(operator(), testToken)
	s.StartImpersonation(member(), operator())

	s.SetAccessToken("refreshed")

	snap := s.Snapshot()
	require.Equal(t, "refreshed", snap.Token)
	require.Equal(t, int64(42), snap.User.ID)
	require.NotNil(t, snap.Impersonation)
	require.True(t, snap.Authenticated)
}

func TestHasPermission(t *testing.T) {
	s := session.NewStore(nil)

	for _, key := range []string{"users.view", "*", ""} {
		require.False(t, s.HasPermission(key), "no identity: %q", key)
	}

	s.Login(operator(), testToken)
	require.True(t, s.HasPermission("users.view"))
	require.False(t, s.HasPermission("users"))
	require.False(t, s.HasPermission("users.view.all"))
	require.False(t, s.HasPermission("roles.edit"))

	s.Login(session.Identity{ID: 1, Permissions: []string{session.WildcardPermission}}, testToken)
	for _, key := range []string{"users.view", "anything", "roles.delete"} {
		require.True(t, s.HasPermission(key), "wildcard: %q", key)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := session.NewStore(nil)
	s.Login(operator(), testToken)

	snap := s.Snapshot()
	snap.User.Username = "mallory"
	snap.User.Permissions[0] = session.WildcardPermission

	require.Equal(t, "admin", s.CurrentUser().Username)
	require.False(t, s.HasPermission("roles.edit"))
}

func TestEveryMutationPersists(t *testing.T) {
	p := &recordingPersister{}
	s := session.NewStore(p)

	s.Login(operator(), testToken)
	s.UpdateUser(session.IdentityPatch{FullName: utils.Ptr("x")})
	s.StartImpersonation(member(), operator())
	s.StopImpersonation()
	s.SetAccessToken("t2")
	s.Logout()

	require.Len(t, p.saved, 6)
	require.Equal(t, session.State{}, p.saved[5])
}

func TestPersistFailure_DoesNotFailMutation(t *testing.T) {
	p := &recordingPersister{saveErr: errors.New("disk full")}
	s := session.NewStore(p)

	s.Login(operator(), testToken)

	require.True(t, s.IsAuthenticated())
	require.EqualError(t, s.PersistErr(), "disk full")

	p.saveErr = nil
	s.Logout()
	require.NoError(t, s.PersistErr())
}

func TestLoadFailure_StartsEmpty(t *testing.T) {
	p := &recordingPersister{loadErr: errors.New("corrupt")}
	s := session.NewStore(p)

	require.False(t, s.IsAuthenticated())
	require.Error(t, s.PersistErr())
}

func TestLoad_RecomputesAuthenticated(t *testing.T) {
	op := operator()
	p := &recordingPersister{loaded: session.State{User: &op, Token: "", Authenticated: true}}
	s := session.NewStore(p)

	require.False(t, s.IsAuthenticated())
	require.False(t, s.Snapshot().Authenticated)

	p := &recordingPersister{}
	s = session.NewStore(p)
	s.Login(operator(), "")
	require.False(t, p.saved[len(p.saved)-1].Authenticated, "persisted flag follows the token")
}

func TestStorageRoundTrip(t *testing.T) {
	st := storage.NewMemoryStorage()

	first := session.NewStore(session.NewStoragePersister(st))
	first.Login(operator(), testToken)
	first.StartImpersonation(member(), operator())

	reloaded := session.NewStore(session.NewStoragePersister(st))
	require.NoError(t, reloaded.PersistErr())
	require.Equal(t, first.Snapshot(), reloaded.Snapshot())

	reloaded.StopImpersonation()
	require.Equal(t, int64(1), reloaded.CurrentUser().ID)
}
