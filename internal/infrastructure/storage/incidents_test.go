package storage

import (
	"context"
	"testing"
	"time"

	"safetylog/internal/domain/incident"
	"safetylog/internal/infrastructure/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestRepo(t *testing.T) (*IncidentRepository, kvstore.Store) {
	t.Helper()
	kv := kvstore.NewMemory()
	repo, err := NewIncidentRepository(kv, slog.Default())
	require.NoError(t, err)
	return repo, kv
}

func testIncident(ts time.Time) *incident.Incident {
	return &incident.Incident{
		Title:       "Panel sparks",
		Type:        incident.TypeElectrical,
		Description: "Breaker panel arcing",
		Impact:      incident.ImpactHigh,
		Timestamp:   ts,
	}
}

func TestIncidentRepository_CreateAssignsMillisID(t *testing.T) {
	repo, _ := newTestRepo(t)

	ts := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	id, err := repo.Create(context.Background(), testIncident(ts))
	require.NoError(t, err)
	assert.Equal(t, ts.UnixMilli(), id)
}

func TestIncidentRepository_CreateBumpsCollidingID(t *testing.T) {
	repo, _ := newTestRepo(t)

	ts := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	id1, err := repo.Create(context.Background(), testIncident(ts))
	require.NoError(t, err)
	id2, err := repo.Create(context.Background(), testIncident(ts))
	require.NoError(t, err)
	id3, err := repo.Create(context.Background(), testIncident(ts))
	require.NoError(t, err)

	assert.Equal(t, id1+1, id2)
	assert.Equal(t, id1+2, id3)
}

func TestIncidentRepository_RoundTrip(t *testing.T) {
	kv := kvstore.NewMemory()
	repo, err := NewIncidentRepository(kv, slog.Default())
	require.NoError(t, err)

	ts := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	inc := testIncident(ts)
	inc.Files = []incident.FileRef{{Name: "photo.jpg", MimeType: "image/jpeg"}}
	id, err := repo.Create(context.Background(), inc)
	require.NoError(t, err)

	// A fresh repository over the same store sees the same record.
	reloaded, err := NewIncidentRepository(kv, slog.Default())
	require.NoError(t, err)

	got, err := reloaded.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, inc.Title, got.Title)
	assert.Equal(t, inc.Type, got.Type)
	assert.True(t, got.Timestamp.Equal(ts))
	require.Len(t, got.Files, 1)
	assert.Equal(t, "photo.jpg", got.Files[0].Name)
}

func TestIncidentRepository_MalformedStateStartsEmpty(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(kvstore.KeyIncidents, "{broken"))

	repo, err := NewIncidentRepository(kv, slog.Default())
	require.NoError(t, err)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestIncidentRepository_Get_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, incident.ErrNotFound)
}

func TestIncidentRepository_Update(t *testing.T) {
	repo, _ := newTestRepo(t)

	id, err := repo.Create(context.Background(), testIncident(time.Now()))
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	got.Title = "Updated title"
	require.NoError(t, repo.Update(context.Background(), got))

	again, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Updated title", again.Title)
}

func TestIncidentRepository_Update_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Update(context.Background(), &incident.Incident{ID: 42, Title: "x"})
	assert.ErrorIs(t, err, incident.ErrNotFound)
}

func TestIncidentRepository_Delete(t *testing.T) {
	repo, _ := newTestRepo(t)

	id, err := repo.Create(context.Background(), testIncident(time.Now()))
	require.NoError(t, err)

	removed, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, incident.ErrNotFound)
}

func TestIncidentRepository_DeleteAbsentLeavesStateUntouched(t *testing.T) {
	repo, kv := newTestRepo(t)

	_, err := repo.Create(context.Background(), testIncident(time.Now()))
	require.NoError(t, err)

	before, _, err := kv.Get(kvstore.KeyIncidents)
	require.NoError(t, err)

	removed, err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, removed)

	after, _, err := kv.Get(kvstore.KeyIncidents)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestIncidentRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo, _ := newTestRepo(t)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(context.Background(), testIncident(base.AddDate(0, 0, i)))
		require.NoError(t, err)
	}

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].Timestamp.Before(items[1].Timestamp))
	assert.True(t, items[1].Timestamp.Before(items[2].Timestamp))
}

func TestIncidentRepository_ListReturnsCopy(t *testing.T) {
	repo, _ := newTestRepo(t)

	id, err := repo.Create(context.Background(), testIncident(time.Now()))
	require.NoError(t, err)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	items[0].Title = "mutated"

	got, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", got.Title)
}
