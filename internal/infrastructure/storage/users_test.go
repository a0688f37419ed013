package storage

import (
	"context"
	"testing"

	"safetylog/internal/domain/session"
	"safetylog/internal/domain/user"
	"safetylog/internal/infrastructure/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestUserRepository_SaveAndFind(t *testing.T) {
	kv := kvstore.NewMemory()
	repo := NewUserRepository(kv, slog.Default())

	require.NoError(t, repo.Save(context.Background(), &user.User{Username: "kim", Role: session.RoleAdmin}))

	got, err := repo.Find(context.Background(), "kim")
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, got.Role)
}

func TestUserRepository_Find_NotFound(t *testing.T) {
	kv := kvstore.NewMemory()
	repo := NewUserRepository(kv, slog.Default())

	_, err := repo.Find(context.Background(), "nobody")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_MalformedStateStartsEmpty(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(kvstore.KeyUsers, "{broken"))
	repo := NewUserRepository(kv, slog.Default())

	_, err := repo.Find(context.Background(), "kim")
	assert.ErrorIs(t, err, user.ErrNotFound)

	// A save after the malformed read works from a clean slate.
	require.NoError(t, repo.Save(context.Background(), &user.User{Username: "kim", Role: session.RoleUser}))
	got, err := repo.Find(context.Background(), "kim")
	require.NoError(t, err)
	assert.Equal(t, session.RoleUser, got.Role)
}

func TestUserRepository_SharedStore(t *testing.T) {
	kv := kvstore.NewMemory()
	repo := NewUserRepository(kv, slog.Default())
	require.NoError(t, repo.Save(context.Background(), &user.User{Username: "kim", Role: session.RoleAdmin}))

	// A second repository over the same store sees the registration.
	other := NewUserRepository(kv, slog.Default())
	got, err := other.Find(context.Background(), "kim")
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, got.Role)
}
