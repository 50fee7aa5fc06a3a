// Package storage defines the client-side persistence interfaces: the cache
// of last-known object snapshots and sync metadata.
package storage

import "context"

//go:generate moq -out snapshots_mock.go . SnapshotStorage

// SnapshotStorage defines the cache of last-known object snapshots. The
// cache supplies the "before" side when recording local edits, so diffs are
// always taken against the state as of the last sync.
type SnapshotStorage interface {
	// SaveSnapshot stores the latest known snapshot of an object.
	SaveSnapshot(ctx context.Context, objectID string, value any) error

	// GetSnapshot retrieves the cached snapshot of an object.
	// Returns ErrSnapshotNotFound if the object has never been cached.
	GetSnapshot(ctx context.Context, objectID string) (any, error)

	// ListSnapshots returns the ids of all cached objects.
	ListSnapshots(ctx context.Context) ([]string, error)

	// DeleteSnapshot removes an object from the cache.
	DeleteSnapshot(ctx context.Context, objectID string) error
}
