// Package sync implements the client-side reconciliation engine: it drains
// pending delta patches in bounded batches, transmits them with exponential
// backoff retry, routes server-reported conflicts through the configured
// policy and signals completion through the event bus.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/deltasync/internal/client/events"
	"github.com/iudanet/deltasync/internal/diff"
	"github.com/iudanet/deltasync/internal/client/pending"
	"github.com/iudanet/deltasync/pkg/api"
)

// SyncResult contains the outcome of one reconciliation attempt.
type SyncResult struct {
	Synced           int   // patches accepted by the server
	Conflicts        int   // conflicts reported by the server
	BytesTransferred int64 // bytes moved across all successful batches
	Duration         int64 // wall time of the attempt in milliseconds
	Success          bool  // false when a batch exhausted its retries
}

// Coordinator orchestrates reconciliation between the local pending changes
// and the remote authority. All mutable state (pending patches, unresolved
// conflicts, handler registrations) is owned by one coordinator instance.
type Coordinator struct {
	transport Transport
	pending   *pending.Store
	bus       *events.Bus
	logger    *slog.Logger

	// sleep is the backoff primitive, injectable for tests
	sleep func(ctx context.Context, d time.Duration) error

	mu         sync.Mutex
	unresolved []api.Conflict
	lastSync   time.Time
	syncing    bool

	cfg Config
}

// NewCoordinator creates a coordinator with its own pending change store and
// event bus. The config is validated and fixed for the coordinator lifetime.
func NewCoordinator(cfg Config, transport Transport, logger *slog.Logger) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sync config: %w", err)
	}

	return &Coordinator{
		cfg:       cfg,
		transport: transport,
		pending:   pending.NewStore(),
		bus:       events.NewBus(),
		logger:    logger,
		sleep:     sleepContext,
	}, nil
}

// RecordChange captures the difference between two snapshots of an object as
// its pending patch, replacing any earlier pending patch for the same id.
// Structurally equal snapshots record nothing.
func (c *Coordinator) RecordChange(objectID string, before, after any) {
	if c.pending.Record(objectID, before, after) {
		c.logger.Debug("recorded pending change", "object_id", objectID)
	}
}

// DiscardChange drops the pending patch for an object without transmitting
// it.
func (c *Coordinator) DiscardChange(objectID string) {
	c.pending.Remove(objectID)
}

// RestorePending seeds the pending store with patches persisted by an
// earlier session. A restored patch replaces any current pending patch for
// the same object.
func (c *Coordinator) RestorePending(patches []api.DeltaPatch) {
	c.pending.Restore(patches)
}

// RestoreConflicts seeds the unresolved conflict list with conflicts
// persisted by an earlier session.
func (c *Coordinator) RestoreConflicts(conflicts []api.Conflict) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unresolved = append(c.unresolved, conflicts...)
}

// GetPendingChanges returns a copy of the patches awaiting transmission.
func (c *Coordinator) GetPendingChanges() []api.DeltaPatch {
	return c.pending.List()
}

// GetConflicts returns a copy of the unresolved conflicts awaiting manual
// resolution. Both versions inside each conflict are deep copies, so callers
// cannot reach internal state through them.
func (c *Coordinator) GetConflicts() []api.Conflict {
	c.mu.Lock()
	defer c.mu.Unlock()

	conflicts := make([]api.Conflict, len(c.unresolved))
	for i, conflict := range c.unresolved {
		conflict.ClientVersion = diff.Copy(conflict.ClientVersion)
		conflict.ServerVersion = diff.Copy(conflict.ServerVersion)
		conflicts[i] = conflict
	}
	return conflicts
}

// LastSyncTime returns when the last reconciliation attempt completed
// successfully, or the zero time if none has.
func (c *Coordinator) LastSyncTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastSync
}

// On subscribes a handler to a coordinator event (events.SyncComplete or
// events.Conflict). Handlers run in registration order.
func (c *Coordinator) On(event string, fn events.Handler) events.Subscription {
	return c.bus.On(event, fn)
}

// Off removes a previously registered handler.
func (c *Coordinator) Off(sub events.Subscription) {
	c.bus.Off(sub)
}

// Sync performs one reconciliation attempt: snapshot the pending patches,
// transmit them in batches of at most BatchSize with retry, route conflicts
// through the configured policy and publish the aggregated result.
//
// Only one attempt may run at a time; a second call while one is in flight
// returns ErrSyncInProgress. On a batch failure the counters accumulated
// from earlier successful batches are returned alongside the error, with
// Success set to false; patches of the failed and later batches stay
// pending for the next attempt.
func (c *Coordinator) Sync(ctx context.Context) (*SyncResult, error) {
	c.mu.Lock()
	if c.syncing {
		c.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	c.syncing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.syncing = false
		c.mu.Unlock()
	}()

	began := time.Now()
	snapshot := c.pending.List()

	if len(snapshot) == 0 {
		result := &SyncResult{Success: true, Duration: time.Since(began).Milliseconds()}
		c.logger.Info("nothing to synchronize")
		c.bus.Publish(events.SyncComplete, result)
		return result, nil
	}

	c.logger.Info("starting synchronization",
		"pending", len(snapshot),
		"batch_size", c.cfg.BatchSize)

	result := &SyncResult{}
	batchNum := 0

	for start := 0; start < len(snapshot); start += c.cfg.BatchSize {
		end := min(start+c.cfg.BatchSize, len(snapshot))
		batch := snapshot[start:end]
		batchNum++

		resp, err := c.sendWithRetry(ctx, batchNum, batch)
		if err != nil {
			result.Duration = time.Since(began).Milliseconds()
			c.logger.Error("synchronization failed",
				"batch", batchNum,
				"synced", result.Synced,
				"error", err)
			return result, err
		}

		conflicting := make(map[string]bool, len(resp.Conflicts))
		for _, conflict := range resp.Conflicts {
			conflicting[conflict.ObjectID] = true
			c.resolveWithPolicy(conflict)
		}

		// Every non-conflicting patch in the batch is now reconciled. The
		// removal matches the transmitted patch so a newer change recorded
		// while the batch was in flight stays queued.
		for _, patch := range batch {
			if !conflicting[patch.ObjectID] {
				c.pending.RemoveMatching(patch)
			}
		}

		result.Synced += len(batch) - len(resp.Conflicts)
		result.Conflicts += len(resp.Conflicts)
		result.BytesTransferred += resp.BytesTransferred
	}

	result.Success = true
	result.Duration = time.Since(began).Milliseconds()

	c.mu.Lock()
	c.lastSync = time.Now()
	c.mu.Unlock()

	c.logger.Info("synchronization completed",
		"synced", result.Synced,
		"conflicts", result.Conflicts,
		"bytes_transferred", result.BytesTransferred,
		"duration_ms", result.Duration)

	c.bus.Publish(events.SyncComplete, result)

	return result, nil
}

// sendWithRetry transmits one batch up to RetryAttempts times. Each failed
// attempt waits 2^attempt seconds before the next one.
func (c *Coordinator) sendWithRetry(ctx context.Context, batchNum int, batch []api.DeltaPatch) (*api.SyncResponse, error) {
	var lastErr error

	for attempt := 1; attempt <= c.cfg.RetryAttempts; attempt++ {
		resp, err := c.transport.SendBatch(ctx, batch)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		c.logger.Warn("batch transmission failed",
			"batch", batchNum,
			"attempt", attempt,
			"error", err)

		if attempt == c.cfg.RetryAttempts {
			break
		}

		delay := time.Duration(1<<attempt) * time.Second
		if err := c.sleep(ctx, delay); err != nil {
			return nil, &TransportError{Batch: batchNum, Attempts: attempt, Err: err}
		}
	}

	return nil, &TransportError{Batch: batchNum, Attempts: c.cfg.RetryAttempts, Err: lastErr}
}

// sleepContext waits for the duration or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
