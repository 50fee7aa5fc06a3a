package storage

import (
	"context"

	"github.com/iudanet/deltasync/pkg/api"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage persists the in-memory sync queue between client sessions:
// the pending patches awaiting transmission and the conflicts awaiting
// manual resolution.
type QueueStorage interface {
	// SavePending replaces the persisted set of pending patches.
	SavePending(ctx context.Context, patches []api.DeltaPatch) error

	// GetPending returns the persisted pending patches, empty if none.
	GetPending(ctx context.Context) ([]api.DeltaPatch, error)

	// SaveConflicts replaces the persisted set of unresolved conflicts.
	SaveConflicts(ctx context.Context, conflicts []api.Conflict) error

	// GetConflicts returns the persisted unresolved conflicts, empty if none.
	GetConflicts(ctx context.Context) ([]api.Conflict, error)
}
