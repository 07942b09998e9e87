package transport_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bovicare/bovicare-cli/tokenstore/storefake"
	"github.com/bovicare/bovicare-cli/transport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newClient(store *storefake.FakeStore, hook func()) *http.Client {
	authTransport := transport.New(store, zerolog.Nop())
	if hook != nil {
		authTransport.SetOnUnauthorized(hook)
	}
	return &http.Client{Transport: authTransport}
}

func TestAttachesBearerHeaderWhenTokenPresent(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.SetTokens("token-abc", "refresh"))

	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
	}))
	defer server.Close()

	resp, err := newClient(store, nil).Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "Bearer token-abc", gotAuth)
	require.NotEmpty(t, gotRequestID)
}

func TestPassesThroughWithoutToken(t *testing.T) {
	store := storefake.NewFakeStore()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	resp, err := newClient(store, nil).Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Empty(t, gotAuth)
}

func TestDoesNotMutateCallerRequest(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.SetTokens("token-abc", "refresh"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := newClient(store, nil).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Empty(t, req.Header.Get("Authorization"))
	require.Empty(t, req.Header.Get("X-Request-ID"))
}

func TestUnauthorizedTriggersExactlyOneLogout(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.SetTokens("stale-token", "refresh"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var logouts atomic.Int32
	client := newClient(store, func() {
		logouts.Add(1)
		_ = store.Clear()
	})

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	// The 401 is still observable by the caller
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, int32(1), logouts.Load())
	require.Empty(t, store.AccessToken())
}

func TestOtherStatusesPassThroughUntouched(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.SetTokens("token-abc", "refresh"))

	for _, status := range []int{http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		var logouts atomic.Int32
		client := newClient(store, func() { logouts.Add(1) })

		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()
		server.Close()

		require.Equal(t, status, resp.StatusCode)
		require.Zero(t, logouts.Load())
		require.Equal(t, "token-abc", store.AccessToken())
	}
}

func TestUnauthorizedWithoutHookIsHarmless(t *testing.T) {
	store := storefake.NewFakeStore()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	// No hook registered yet: the middleware still runs, the 401 just
	// passes through
	resp, err := newClient(store, nil).Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
