package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/deltasync/internal/client/storage"
)

// SaveSnapshot stores the latest known snapshot of an object as JSON
func (s *Storage) SaveSnapshot(ctx context.Context, objectID string, value any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		if err := bucket.Put([]byte(objectID), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetSnapshot retrieves the cached snapshot of an object
// Returns storage.ErrSnapshotNotFound if the object has never been cached
func (s *Storage) GetSnapshot(ctx context.Context, objectID string) (any, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value any

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return storage.ErrSnapshotNotFound
		}

		data := bucket.Get([]byte(objectID))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// ListSnapshots returns the ids of all cached objects
func (s *Storage) ListSnapshots(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ids []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return ids, nil
}

// DeleteSnapshot removes an object from the cache
func (s *Storage) DeleteSnapshot(ctx context.Context, objectID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return nil
		}

		return bucket.Delete([]byte(objectID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
