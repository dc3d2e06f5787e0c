package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_EnsureStore(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := db.EnsureStore(ctx, "meditations-v1")
	require.NoError(t, err)

	// idempotent, second call shouldn't fail
	err = db.EnsureStore(ctx, "meditations-v1")
	require.NoError(t, err)

	names, err := db.StoreNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"meditations-v1"}, names)
}

func TestDB_StoreNames(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	names, err := db.StoreNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, db.EnsureStore(ctx, "meditations-v2"))
	require.NoError(t, db.EnsureStore(ctx, "meditations-v1"))

	names, err = db.StoreNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"meditations-v1", "meditations-v2"}, names, "sorted by name")
}

func TestDB_DeleteStore(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, db.EnsureStore(ctx, "meditations-v1"))
	require.NoError(t, db.PutEntry(ctx, &CacheEntry{
		StoreName:  "meditations-v1",
		RequestKey: "/index.html",
		Status:     200,
		Headers:    `{"Content-Type":["text/html"]}`,
		Body:       []byte("<html></html>"),
	}))

	err := db.DeleteStore(ctx, "meditations-v1")
	require.NoError(t, err)

	names, err := db.StoreNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	// entries removed by cascade
	_, err = db.GetEntry(ctx, "meditations-v1", "/index.html")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDB_DeleteStore_Missing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// deleting a store that never existed is not an error
	err := db.DeleteStore(context.Background(), "no-such-store")
	assert.NoError(t, err)
}

func TestDB_PutEntry(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, db.EnsureStore(ctx, "meditations-v1"))

	entry := &CacheEntry{
		StoreName:  "meditations-v1",
		RequestKey: "/data/meditations.json",
		Status:     200,
		Headers:    `{"Content-Type":["application/json"]}`,
		Body:       []byte(`{"items":[]}`),
	}
	require.NoError(t, db.PutEntry(ctx, entry))

	got, err := db.GetEntry(ctx, "meditations-v1", "/data/meditations.json")
	require.NoError(t, err)
	assert.Equal(t, 200, got.Status)
	assert.Equal(t, entry.Headers, got.Headers)
	assert.Equal(t, entry.Body, got.Body)
	assert.False(t, got.FetchedAt.IsZero())
}

func TestDB_PutEntry_Replace(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, db.EnsureStore(ctx, "meditations-v1"))

	first := &CacheEntry{
		StoreName:  "meditations-v1",
		RequestKey: "/",
		Status:     200,
		Headers:    "{}",
		Body:       []byte("old"),
	}
	require.NoError(t, db.PutEntry(ctx, first))

	second := &CacheEntry{
		StoreName:  "meditations-v1",
		RequestKey: "/",
		Status:     200,
		Headers:    "{}",
		Body:       []byte("new"),
	}
	require.NoError(t, db.PutEntry(ctx, second))

	got, err := db.GetEntry(ctx, "meditations-v1", "/")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got.Body, "latest capture wins")

	count, err := db.CountEntries(ctx, "meditations-v1")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "replace, not duplicate")
}

func TestDB_GetEntry_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, db.EnsureStore(ctx, "meditations-v1"))

	_, err := db.GetEntry(ctx, "meditations-v1", "/missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDB_CountEntries(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, db.EnsureStore(ctx, "meditations-v1"))

	count, err := db.CountEntries(ctx, "meditations-v1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for _, key := range []string{"/", "/index.html", "/manifest.json"} {
		require.NoError(t, db.PutEntry(ctx, &CacheEntry{
			StoreName:  "meditations-v1",
			RequestKey: key,
			Status:     200,
			Headers:    "{}",
			Body:       []byte("body"),
		}))
	}

	count, err = db.CountEntries(ctx, "meditations-v1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
