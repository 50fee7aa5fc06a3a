package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/deltasync/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestSaveAndGetObject(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	obj := &storage.StoredObject{
		ObjectID:  "obj-1",
		State:     map[string]any{"name": "a", "age": float64(1)},
		UpdatedAt: 1700000000000,
	}
	require.NoError(t, store.SaveObject(ctx, obj))

	got, err := store.GetObject(ctx, "obj-1")
	require.NoError(t, err)
	assert.Equal(t, obj.ObjectID, got.ObjectID)
	assert.Equal(t, obj.State, got.State)
	assert.Equal(t, obj.UpdatedAt, got.UpdatedAt)
}

func TestSaveObject_Upsert(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveObject(ctx, &storage.StoredObject{
		ObjectID:  "obj-1",
		State:     map[string]any{"v": "old"},
		UpdatedAt: 1,
	}))
	require.NoError(t, store.SaveObject(ctx, &storage.StoredObject{
		ObjectID:  "obj-1",
		State:     map[string]any{"v": "new"},
		UpdatedAt: 2,
	}))

	got, err := store.GetObject(ctx, "obj-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"v": "new"}, got.State)
	assert.Equal(t, int64(2), got.UpdatedAt)
}

func TestSaveObject_NilStateRoundTrips(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveObject(ctx, &storage.StoredObject{
		ObjectID:  "obj-1",
		State:     nil,
		UpdatedAt: 1,
	}))

	got, err := store.GetObject(ctx, "obj-1")
	require.NoError(t, err)
	assert.Nil(t, got.State)
}

func TestGetObject_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetObject(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestListObjects(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveObject(ctx, &storage.StoredObject{ObjectID: "obj-b", State: map[string]any{"v": "b"}, UpdatedAt: 2}))
	require.NoError(t, store.SaveObject(ctx, &storage.StoredObject{ObjectID: "obj-a", State: map[string]any{"v": "a"}, UpdatedAt: 1}))

	objects, err := store.ListObjects(ctx)
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "obj-a", objects[0].ObjectID)
	assert.Equal(t, "obj-b", objects[1].ObjectID)
}

func TestListObjects_Empty(t *testing.T) {
	store := newTestStorage(t)

	objects, err := store.ListObjects(context.Background())

	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestStorageImplementsObjectStorage(t *testing.T) {
	var _ storage.ObjectStorage = (*Storage)(nil)
}
