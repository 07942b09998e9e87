package nav_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/bovicare/bovicare-cli/api"
	"github.com/bovicare/bovicare-cli/guard"
	"github.com/bovicare/bovicare-cli/nav"
	"github.com/bovicare/bovicare-cli/session"
	"github.com/bovicare/bovicare-cli/tokenstore/storefake"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type noAuth struct{}

func (noAuth) Login(context.Context, string, string) (api.TokenPair, error) {
	return api.TokenPair{}, nil
}
func (noAuth) Me(context.Context) (api.User, error) { return api.User{}, nil }

type recordingView struct {
	name     string
	rendered *[]string
}

func (v recordingView) Render(_ context.Context, _ io.Writer) error {
	*v.rendered = append(*v.rendered, v.name)
	return nil
}

type navFixture struct {
	navigator *nav.Navigator
	rendered  []string
}

func setupNavigator(t *testing.T, role session.Role) *navFixture {
	t.Helper()

	store := storefake.NewFakeStore()
	if role != session.RoleUnknown {
		record, err := json.Marshal(session.Identity{ID: 1, Email: "x@y.example", Role: role})
		require.NoError(t, err)
		require.NoError(t, store.SetTokens("access", "refresh"))
		require.NoError(t, store.SetIdentity(record))
	}
	manager, err := session.NewManager(store, noAuth{}, zerolog.Nop())
	require.NoError(t, err)

	f := &navFixture{}
	f.navigator = nav.New(guard.New(manager, zerolog.Nop()), zerolog.Nop(), &bytes.Buffer{}, "TEST")

	adminOnly := &guard.Requirement{Role: session.RoleAdmin}
	agronomeOnly := &guard.Requirement{Role: session.RoleAgronome}
	f.navigator.Register(nav.Route{Path: session.LoginRoute, Title: "Login",
		View: recordingView{"login", &f.rendered}})
	f.navigator.Register(nav.Route{Path: session.AdminLandingRoute, Title: "Dashboard",
		Requires: adminOnly, View: recordingView{"admin-dashboard", &f.rendered}})
	f.navigator.Register(nav.Route{Path: "/admin/users", Title: "Users",
		Requires: adminOnly, View: recordingView{"admin-users", &f.rendered}})
	f.navigator.Register(nav.Route{Path: session.AgronomeLandingRoute, Title: "Dashboard",
		Requires: agronomeOnly, View: recordingView{"agronome-dashboard", &f.rendered}})
	return f
}

func TestNavigateMountsAuthorizedView(t *testing.T) {
	f := setupNavigator(t, session.RoleAdmin)

	require.NoError(t, f.navigator.Navigate(context.Background(), "/admin/users"))
	require.Equal(t, []string{"admin-users"}, f.rendered)
	require.Equal(t, "/admin/users", f.navigator.Current())
}

func TestNavigateWithoutSessionRedirectsToLogin(t *testing.T) {
	f := setupNavigator(t, session.RoleUnknown)

	require.NoError(t, f.navigator.Navigate(context.Background(), "/admin/users"))
	require.Equal(t, []string{"login"}, f.rendered)
	require.Equal(t, session.LoginRoute, f.navigator.Current())
}

func TestNavigateWrongRoleLandsOnOwnDashboard(t *testing.T) {
	f := setupNavigator(t, session.RoleAdmin)

	require.NoError(t, f.navigator.Navigate(context.Background(), session.AgronomeLandingRoute))
	require.Equal(t, []string{"admin-dashboard"}, f.rendered)
	require.Equal(t, session.AdminLandingRoute, f.navigator.Current())
}

func TestUnknownPathFallsBackToLogin(t *testing.T) {
	f := setupNavigator(t, session.RoleAgronome)

	require.NoError(t, f.navigator.Navigate(context.Background(), "/does/not/exist"))
	require.Equal(t, []string{"login"}, f.rendered)
}

func TestMenuProjectsRoutesByRole(t *testing.T) {
	f := setupNavigator(t, session.RoleAdmin)
	identity := adminIdentity(t)

	entries := f.navigator.Menu(identity)
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	require.Equal(t, []string{session.LoginRoute, session.AdminLandingRoute, "/admin/users"}, paths)

	require.Equal(t, []nav.MenuEntry{{Path: session.LoginRoute, Title: "Login"}}, f.navigator.Menu(nil))
}

func adminIdentity(_ *testing.T) *session.Identity {
	return &session.Identity{ID: 1, Email: "x@y.example", Role: session.RoleAdmin}
}
