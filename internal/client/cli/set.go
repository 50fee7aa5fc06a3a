package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/deltasync/internal/client/storage"
	"github.com/iudanet/deltasync/internal/diff"
)

func (c *Cli) runSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: deltasync set <id> <json>")
	}

	objectID := args[0]

	after, err := parseJSONValue(args[1])
	if err != nil {
		return fmt.Errorf("failed to parse new state: %w", err)
	}

	// The diff base is the state as of the last sync, so repeated edits to
	// the same object replace the pending patch with a fresh delta from the
	// same base. An object the server has never seen diffs against nil,
	// producing a root add.
	before, err := c.snapshots.GetSnapshot(ctx, objectID)
	if err != nil {
		if !errors.Is(err, storage.ErrSnapshotNotFound) {
			return fmt.Errorf("failed to load cached snapshot: %w", err)
		}
		before = nil
	}

	if diff.Equal(before, after) {
		c.coordinator.DiscardChange(objectID)
		c.io.Println("No changes against the last synced state.")
		return nil
	}

	c.coordinator.RecordChange(objectID, before, after)

	c.io.Printf("Recorded change for %s\n", objectID)

	return nil
}
