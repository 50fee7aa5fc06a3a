// Package pending keeps the outstanding delta patches awaiting transmission
// to the server, at most one per object identity.
package pending

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/deltasync/internal/diff"
	"github.com/iudanet/deltasync/pkg/api"
)

// Store maps object identity to its single latest outstanding patch.
// Recording a new change for an object replaces any previous pending patch
// for it: only the net latest delta is retained, never a patch history.
type Store struct {
	patches map[string]api.DeltaPatch
	now     func() time.Time
	mu      sync.RWMutex
}

// NewStore creates an empty pending change store.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates a store with an injected clock.
// Used for testing and for replay scenarios.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		patches: make(map[string]api.DeltaPatch),
		now:     now,
	}
}

// Record computes the diff between two snapshots of an object and, when it is
// not empty, upserts it as the object's pending patch. Structurally equal
// snapshots record nothing. Returns true if a patch was recorded.
func (s *Store) Record(objectID string, before, after any) bool {
	ops := diff.Diff(before, after)
	if len(ops) == 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.patches[objectID] = api.DeltaPatch{
		ObjectID:   objectID,
		Timestamp:  s.now().UnixMilli(),
		Operations: ops,
	}

	return true
}

// cloneOperations copies the operations slice together with the nested
// structures inside each operation value, so callers never alias stored state.
func cloneOperations(ops []api.Operation) []api.Operation {
	cloned := slices.Clone(ops)
	for i := range cloned {
		cloned[i].Value = diff.Copy(cloned[i].Value)
	}
	return cloned
}

// List returns a copy of the current pending patches ordered by object id.
// Mutating the returned patches, including nested operation values, does not
// affect the store.
func (s *Store) List() []api.DeltaPatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patches := make([]api.DeltaPatch, 0, len(s.patches))
	for _, patch := range s.patches {
		patch.Operations = cloneOperations(patch.Operations)
		patches = append(patches, patch)
	}
	slices.SortFunc(patches, func(a, b api.DeltaPatch) int {
		return strings.Compare(a.ObjectID, b.ObjectID)
	})

	return patches
}

// Get returns the pending patch for an object, if any.
func (s *Store) Get(objectID string) (api.DeltaPatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patch, ok := s.patches[objectID]
	if ok {
		patch.Operations = cloneOperations(patch.Operations)
	}
	return patch, ok
}

// Restore seeds the store with patches persisted by a previous session.
// A restored patch replaces any current pending patch for the same object.
func (s *Store) Restore(patches []api.DeltaPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, patch := range patches {
		patch.Operations = cloneOperations(patch.Operations)
		s.patches[patch.ObjectID] = patch
	}
}

// Remove clears the pending patch for an object. Called after a successful
// sync of the object or a server-wins conflict resolution.
func (s *Store) Remove(objectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.patches, objectID)
}

// RemoveMatching clears the pending patch for an object only if it is still
// the given patch (matched by timestamp). A newer patch recorded while the
// given one was in flight stays queued as the next pending entry.
func (s *Store) RemoveMatching(patch api.DeltaPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.patches[patch.ObjectID]
	if ok && current.Timestamp == patch.Timestamp {
		delete(s.patches, patch.ObjectID)
	}
}

// Restamp advances the pending patch's timestamp for an object. Used when a
// queued patch must supersede a server state observed at the given time. A
// patch already stamped later, or a missing one, is left alone.
func (s *Store) Restamp(objectID string, timestamp int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch, ok := s.patches[objectID]
	if !ok || patch.Timestamp >= timestamp {
		return
	}
	patch.Timestamp = timestamp
	s.patches[objectID] = patch
}

// Len returns the number of objects with outstanding patches.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.patches)
}
