package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/deltasync/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_CreatesDatabase(t *testing.T) {
	store := newTestStorage(t)

	assert.NotNil(t, store)
}

func TestSaveAndGetSnapshot(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	value := map[string]any{"name": "a", "age": float64(1)}
	require.NoError(t, store.SaveSnapshot(ctx, "obj-1", value))

	got, err := store.GetSnapshot(ctx, "obj-1")
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestSaveSnapshot_OverwritesPrevious(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "obj-1", map[string]any{"v": "old"}))
	require.NoError(t, store.SaveSnapshot(ctx, "obj-1", map[string]any{"v": "new"}))

	got, err := store.GetSnapshot(ctx, "obj-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"v": "new"}, got)
}

func TestGetSnapshot_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetSnapshot(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestListSnapshots(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "obj-a", map[string]any{"v": "a"}))
	require.NoError(t, store.SaveSnapshot(ctx, "obj-b", map[string]any{"v": "b"}))

	ids, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"obj-a", "obj-b"}, ids)
}

func TestListSnapshots_Empty(t *testing.T) {
	store := newTestStorage(t)

	ids, err := store.ListSnapshots(context.Background())

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDeleteSnapshot(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "obj-1", map[string]any{"v": "1"}))
	require.NoError(t, store.DeleteSnapshot(ctx, "obj-1"))

	_, err := store.GetSnapshot(ctx, "obj-1")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestDeleteSnapshot_MissingIsNoOp(t *testing.T) {
	store := newTestStorage(t)

	assert.NoError(t, store.DeleteSnapshot(context.Background(), "missing"))
}

func TestSaveAndGetLastSyncTime(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	ts, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)

	expected := int64(1700000000000)
	require.NoError(t, store.SaveLastSyncTime(ctx, expected))

	ts, err = store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, ts)
}

func TestStorageImplementsClientInterfaces(t *testing.T) {
	var _ storage.SnapshotStorage = (*Storage)(nil)
	var _ storage.MetadataStorage = (*Storage)(nil)
}
