package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rihla/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLitePreferenceRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLitePreferenceRepo(database)
}

func TestPreferenceRepo_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "user_id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreferenceRepo_SetAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "user_id", "pilgrim-42"))

	got, err := repo.Get(ctx, "user_id")
	require.NoError(t, err)
	assert.Equal(t, "pilgrim-42", got)
}

func TestPreferenceRepo_SetOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "locale", "en"))
	require.NoError(t, repo.Set(ctx, "locale", "ar"))

	got, err := repo.Get(ctx, "locale")
	require.NoError(t, err)
	assert.Equal(t, "ar", got)
}

func TestPreferenceRepo_All(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "user_id", "pilgrim-42"))
	require.NoError(t, repo.Set(ctx, "locale", "ur"))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"user_id": "pilgrim-42", "locale": "ur"}, all)
}

func TestPreferenceRepo_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "locale", "en"))
	require.NoError(t, repo.Delete(ctx, "locale"))

	_, err := repo.Get(ctx, "locale")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, repo.Delete(ctx, "locale"))
}
