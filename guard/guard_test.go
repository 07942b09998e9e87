package guard_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bovicare/bovicare-cli/api"
	"github.com/bovicare/bovicare-cli/guard"
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

// gateWithIdentity builds a gate whose session manager restored the given
// role from the store. An empty role means no session at all.
func gateWithIdentity(t *testing.T, role session.Role) *guard.Gate {
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
	return guard.New(manager, zerolog.Nop())
}

func TestGateAdmitsMatchingRole(t *testing.T) {
	for _, role := range []session.Role{session.RoleAdmin, session.RoleAgronome} {
		gate := gateWithIdentity(t, role)
		decision := gate.Check(&guard.Requirement{Role: role})
		require.True(t, decision.Allowed)
		require.Empty(t, decision.Redirect)
	}
}

func TestGateDeniesWithoutSession(t *testing.T) {
	gate := gateWithIdentity(t, session.RoleUnknown)

	decision := gate.Check(&guard.Requirement{Role: session.RoleAdmin})
	require.False(t, decision.Allowed)
	require.Equal(t, session.LoginRoute, decision.Redirect)
}

func TestGateRedirectsWrongRoleToOwnLanding(t *testing.T) {
	tests := []struct {
		identity session.Role
		required session.Role
		redirect string
	}{
		// Authenticated-but-wrong-role lands on its own dashboard, not
		// login, so it cannot loop
		{session.RoleAdmin, session.RoleAgronome, session.AdminLandingRoute},
		{session.RoleAgronome, session.RoleAdmin, session.AgronomeLandingRoute},
		// Roles without a landing view go to login
		{session.RoleEleveur, session.RoleAdmin, session.LoginRoute},
	}

	for _, tc := range tests {
		gate := gateWithIdentity(t, tc.identity)
		decision := gate.Check(&guard.Requirement{Role: tc.required})
		require.False(t, decision.Allowed, "identity %s required %s", tc.identity, tc.required)
		require.Equal(t, tc.redirect, decision.Redirect)
	}
}

func TestGateAllowsPublicRoutes(t *testing.T) {
	gate := gateWithIdentity(t, session.RoleUnknown)
	require.True(t, gate.Check(nil).Allowed)

	gate = gateWithIdentity(t, session.RoleAdmin)
	require.True(t, gate.Check(nil).Allowed)
}

func TestGateChecksAreSideEffectFree(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.SetTokens("access", "refresh"))
	record, err := json.Marshal(session.Identity{ID: 1, Role: session.RoleAdmin})
	require.NoError(t, err)
	require.NoError(t, store.SetIdentity(record))

	manager, err := session.NewManager(store, noAuth{}, zerolog.Nop())
	require.NoError(t, err)
	gate := guard.New(manager, zerolog.Nop())

	gate.Check(&guard.Requirement{Role: session.RoleAgronome})
	gate.Check(&guard.Requirement{Role: session.RoleAdmin})

	// Denials redirect, they never touch the session
	require.Equal(t, "access", store.AccessToken())
	require.NotNil(t, manager.CurrentIdentity())
}
