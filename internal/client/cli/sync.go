package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/deltasync/pkg/api"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	snapshot := c.coordinator.GetPendingChanges()

	result, err := c.coordinator.Sync(ctx)
	if err != nil {
		// Earlier batches may already be reconciled; their cached bases
		// must still advance even though the attempt as a whole failed.
		c.refreshSnapshots(ctx, snapshot)
		if result != nil && result.Synced > 0 {
			c.io.Printf("Partially synchronized: %d patch(es) accepted before the failure.\n",
				result.Synced)
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	// An attempt with nothing pending completes without stamping the
	// coordinator; it still counts as a successful run.
	completed := c.coordinator.LastSyncTime()
	if completed.IsZero() {
		completed = time.Now()
	}
	if err := c.metadata.SaveLastSyncTime(ctx, completed.UnixMilli()); err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}

	c.refreshSnapshots(ctx, snapshot)

	c.io.Println("Synchronization completed.")
	c.io.Println()
	c.io.Printf("Synced:            %d patch(es)\n", result.Synced)
	if result.Conflicts > 0 {
		c.io.Printf("Conflicts:         %d\n", result.Conflicts)
		c.io.Println("Run 'deltasync conflicts' to inspect them.")
	}
	c.io.Printf("Bytes transferred: %d\n", result.BytesTransferred)
	c.io.Printf("Duration:          %dms\n", result.Duration)

	return nil
}

// refreshSnapshots advances the local cache to the server's state for every
// object whose patch left the pending queue during the sync. Objects still
// pending (client-wins conflicts) or queued for manual resolution keep their
// old base. Refresh failures are reported but do not fail the sync.
func (c *Cli) refreshSnapshots(ctx context.Context, transmitted []api.DeltaPatch) {
	stillPending := make(map[string]bool)
	for _, patch := range c.coordinator.GetPendingChanges() {
		stillPending[patch.ObjectID] = true
	}
	unresolved := make(map[string]bool)
	for _, conflict := range c.coordinator.GetConflicts() {
		unresolved[conflict.ObjectID] = true
	}

	for _, patch := range transmitted {
		if stillPending[patch.ObjectID] || unresolved[patch.ObjectID] {
			continue
		}

		resp, err := c.apiClient.GetObject(ctx, patch.ObjectID)
		if err != nil {
			c.io.Printf("Warning: failed to refresh cache for %s: %v\n", patch.ObjectID, err)
			continue
		}

		if resp.State == nil {
			err = c.snapshots.DeleteSnapshot(ctx, patch.ObjectID)
		} else {
			err = c.snapshots.SaveSnapshot(ctx, patch.ObjectID, resp.State)
		}
		if err != nil {
			c.io.Printf("Warning: failed to refresh cache for %s: %v\n", patch.ObjectID, err)
		}
	}
}
