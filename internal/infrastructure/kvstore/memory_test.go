package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	store := NewMemory()

	_, found, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set("theme", "dark"))

	v, found, err := store.Get("theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", v)
}

func TestMemory_Overwrite(t *testing.T) {
	store := NewMemory()

	require.NoError(t, store.Set("theme", "dark"))
	require.NoError(t, store.Set("theme", "light"))

	v, _, err := store.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New("redis", "")
	assert.Error(t, err)
}

func TestNew_Memory(t *testing.T) {
	store, err := New(BackendMemory, "")
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
