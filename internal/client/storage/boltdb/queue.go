package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/deltasync/pkg/api"
)

const (
	keyPendingPatches = "pending_patches"
	keyConflicts      = "conflicts"
)

// SavePending replaces the persisted set of pending patches
func (s *Storage) SavePending(ctx context.Context, patches []api.DeltaPatch) error {
	return s.putQueueKey(keyPendingPatches, patches)
}

// GetPending returns the persisted pending patches, empty if none
func (s *Storage) GetPending(ctx context.Context) ([]api.DeltaPatch, error) {
	var patches []api.DeltaPatch
	if err := s.getQueueKey(keyPendingPatches, &patches); err != nil {
		return nil, err
	}
	return patches, nil
}

// SaveConflicts replaces the persisted set of unresolved conflicts
func (s *Storage) SaveConflicts(ctx context.Context, conflicts []api.Conflict) error {
	return s.putQueueKey(keyConflicts, conflicts)
}

// GetConflicts returns the persisted unresolved conflicts, empty if none
func (s *Storage) GetConflicts(ctx context.Context) ([]api.Conflict, error) {
	var conflicts []api.Conflict
	if err := s.getQueueKey(keyConflicts, &conflicts); err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (s *Storage) putQueueKey(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}

		return nil
	})
}

func (s *Storage) getQueueKey(key string, out any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}

		return nil
	})
}
