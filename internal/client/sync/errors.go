package sync

import (
	"errors"
	"fmt"
)

// Common sync errors
var (
	// ErrSyncInProgress indicates that a reconciliation attempt is already
	// running; the caller must wait for it to finish.
	ErrSyncInProgress = errors.New("synchronization already in progress")

	// ErrUnknownPolicy indicates an unrecognized conflict resolution policy
	ErrUnknownPolicy = errors.New("unknown conflict resolution policy")

	// ErrConflictNotFound indicates that no unresolved conflict matches the
	// given object id and timestamp
	ErrConflictNotFound = errors.New("unresolved conflict not found")
)

// TransportError reports a batch that exhausted all of its retry attempts.
// Earlier batches of the same reconciliation attempt may already have been
// applied; their patches are no longer pending.
type TransportError struct {
	Err      error
	Batch    int
	Attempts int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("batch %d failed after %d attempts: %v", e.Batch, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
