package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/deltasync/pkg/api"
)

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: deltasync resolve <id> <timestamp>")
	}

	objectID := args[0]
	timestamp, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", args[1], err)
	}

	var conflict *api.Conflict
	for _, cand := range c.coordinator.GetConflicts() {
		if cand.ObjectID == objectID && cand.Timestamp == timestamp {
			conflict = &cand
			break
		}
	}
	if conflict == nil {
		return fmt.Errorf("no unresolved conflict for object %s at timestamp %d", objectID, timestamp)
	}

	c.io.Printf("Object:    %s\n", conflict.ObjectID)
	c.io.Println("Client version:")
	c.io.Println(formatJSON(conflict.ClientVersion))
	c.io.Println("Server version:")
	c.io.Println(formatJSON(conflict.ServerVersion))
	c.io.Println()

	choice, err := c.io.ReadInput("Keep [c]lient or [s]erver version? ")
	if err != nil {
		return fmt.Errorf("failed to read choice: %w", err)
	}

	switch choice {
	case "c", "client":
		if err := c.coordinator.ResolveConflict(*conflict); err != nil {
			return fmt.Errorf("failed to resolve conflict: %w", err)
		}
		// The server version becomes the new base and the client version is
		// re-queued as a fresh delta against it.
		if err := c.snapshots.SaveSnapshot(ctx, objectID, conflict.ServerVersion); err != nil {
			return fmt.Errorf("failed to cache snapshot: %w", err)
		}
		c.coordinator.RecordChange(objectID, conflict.ServerVersion, conflict.ClientVersion)
		c.io.Println("Kept the client version; run 'deltasync sync' to push it.")

	case "s", "server":
		if err := c.coordinator.ResolveConflict(*conflict); err != nil {
			return fmt.Errorf("failed to resolve conflict: %w", err)
		}
		if err := c.snapshots.SaveSnapshot(ctx, objectID, conflict.ServerVersion); err != nil {
			return fmt.Errorf("failed to cache snapshot: %w", err)
		}
		c.io.Println("Kept the server version.")

	default:
		return fmt.Errorf("unknown choice %q, expected 'c' or 's'", choice)
	}

	return nil
}
