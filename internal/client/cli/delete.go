package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/deltasync/internal/client/storage"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing object ID. Usage: deltasync delete <id>")
	}

	objectID := args[0]

	before, err := c.snapshots.GetSnapshot(ctx, objectID)
	if err != nil {
		if !errors.Is(err, storage.ErrSnapshotNotFound) {
			return fmt.Errorf("failed to load cached snapshot: %w", err)
		}
		// Never synced: dropping the pending patch is the whole deletion.
		c.coordinator.DiscardChange(objectID)
		c.io.Printf("Discarded unsynced object %s\n", objectID)
		return nil
	}

	c.coordinator.RecordChange(objectID, before, nil)

	c.io.Printf("Recorded deletion of %s\n", objectID)
	c.io.Println("Run 'deltasync sync' to push it to the server.")

	return nil
}
