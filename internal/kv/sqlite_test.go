// internal/kv/sqlite_test.go
package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestBackend(t *testing.T) *SQLite {
	t.Helper()

	b, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestSQLite_PutGet_RoundTrip(t *testing.T) {
	b := setupTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, "a", []byte(`{"id":1}`)))

	got, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), got)
}

func TestSQLite_Get_NotFound(t *testing.T) {
	b := setupTestBackend(t)

	_, err := b.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_Put_Overwrite(t *testing.T) {
	b := setupTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, "a", []byte("first")))
	require.NoError(t, b.Put(ctx, "a", []byte("second")))

	got, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestSQLite_Delete_Many(t *testing.T) {
	b := setupTestBackend(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, b.Put(ctx, k, []byte(k)))
	}

	require.NoError(t, b.Delete(ctx, "a", "c", "never-existed"))

	_, err := b.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = b.Get(ctx, "c")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := b.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestSQLite_Delete_Empty(t *testing.T) {
	b := setupTestBackend(t)
	assert.NoError(t, b.Delete(context.Background()))
}

func TestSQLite_Keys_Prefix(t *testing.T) {
	b := setupTestBackend(t)
	ctx := context.Background()

	for _, k := range []string{"cache_movies_popular_page_1", "cache_trending_page_1", "entity_Movie_42", "cach"} {
		require.NoError(t, b.Put(ctx, k, []byte("x")))
	}

	keys, err := b.Keys(ctx, "cache_")
	require.NoError(t, err)
	assert.Equal(t, []string{"cache_movies_popular_page_1", "cache_trending_page_1"}, keys)

	all, err := b.Keys(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
