package tokenstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bovicare/bovicare-cli/tokenstore"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	folder := t.TempDir()

	store, err := tokenstore.NewFileStore(folder)
	require.NoError(t, err)
	require.Empty(t, store.AccessToken())

	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.SetIdentity([]byte(`{"id":1,"role":"ADMIN"}`)))

	// A new instance over the same folder sees the persisted session (the
	// page-reload case)
	reloaded, err := tokenstore.NewFileStore(folder)
	require.NoError(t, err)
	require.Equal(t, "access-1", reloaded.AccessToken())
	require.Equal(t, "refresh-1", reloaded.RefreshToken())
	require.JSONEq(t, `{"id":1,"role":"ADMIN"}`, string(reloaded.Identity()))
}

func TestFileStoreClearRemovesEverythingTogether(t *testing.T) {
	folder := t.TempDir()

	store, err := tokenstore.NewFileStore(folder)
	require.NoError(t, err)
	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.SetIdentity([]byte(`{"id":1}`)))

	require.NoError(t, store.Clear())
	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
	require.Nil(t, store.Identity())

	// Clearing an empty store is a no-op, not an error
	require.NoError(t, store.Clear())

	_, err = os.Stat(filepath.Join(folder, "session.json"))
	require.True(t, os.IsNotExist(err))
}

func TestFileStoreToleratesCorruptFile(t *testing.T) {
	folder := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(folder, "session.json"), []byte("{not json"), 0o600))

	store, err := tokenstore.NewFileStore(folder)
	require.NoError(t, err)
	require.Empty(t, store.AccessToken())
	require.Nil(t, store.Identity())
}

func TestFileStoreFilePermissions(t *testing.T) {
	folder := t.TempDir()
	store, err := tokenstore.NewFileStore(folder)
	require.NoError(t, err)
	require.NoError(t, store.SetTokens("access-1", "refresh-1"))

	info, err := os.Stat(filepath.Join(folder, "session.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
