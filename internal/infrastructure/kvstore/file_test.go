package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")

	store, err := NewFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyTheme, "dark"))
	require.NoError(t, store.Set(KeyIncidents, `[{"id":1}]`))

	v, found, err := store.Get(KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", v)
}

func TestFile_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyTheme, "dark"))
	require.NoError(t, store.Close())

	reloaded, err := NewFile(path)
	require.NoError(t, err)

	v, found, err := reloaded.Get(KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", v)
}

func TestFile_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	store, err := NewFile(path)
	require.NoError(t, err)

	_, found, err := store.Get(KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFile_CorruptFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFile(path)
	assert.Error(t, err)
}

func TestFile_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kv.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyTheme, "light"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kv.json", entries[0].Name())
}
