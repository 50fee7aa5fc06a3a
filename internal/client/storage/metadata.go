package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves when the last successful sync completed
	// (ms since epoch)
	SaveLastSyncTime(ctx context.Context, timestamp int64) error

	// GetLastSyncTime retrieves when the last successful sync completed.
	// Returns 0 if no sync has been performed yet
	GetLastSyncTime(ctx context.Context) (int64, error)
}
