// Package storage defines the server-side authoritative object store.
package storage

import "context"

// StoredObject is one authoritative object with its last modification time.
type StoredObject struct {
	State     any    // current JSON-like state, nil for a removed root
	ObjectID  string // stable object identity
	UpdatedAt int64  // ms since epoch of the last accepted patch
}

//go:generate moq -out objects_mock.go . ObjectStorage

// ObjectStorage defines interface for the authoritative object store
type ObjectStorage interface {
	// GetObject retrieves an object by id.
	// Returns ErrObjectNotFound if the object does not exist
	GetObject(ctx context.Context, objectID string) (*StoredObject, error)

	// SaveObject creates or updates an object
	SaveObject(ctx context.Context, obj *StoredObject) error

	// ListObjects returns all stored objects
	ListObjects(ctx context.Context) ([]*StoredObject, error)
}
