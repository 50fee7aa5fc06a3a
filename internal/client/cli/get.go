package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing object ID. Usage: deltasync get <id>")
	}

	objectID := args[0]

	resp, err := c.apiClient.GetObject(ctx, objectID)
	if err != nil {
		return fmt.Errorf("failed to fetch object: %w", err)
	}

	if resp.State == nil {
		if err := c.snapshots.DeleteSnapshot(ctx, objectID); err != nil {
			return fmt.Errorf("failed to drop cached snapshot: %w", err)
		}
		c.io.Printf("Object %s was deleted on the server.\n", objectID)
		return nil
	}

	if err := c.snapshots.SaveSnapshot(ctx, objectID, resp.State); err != nil {
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}

	c.io.Printf("Object:  %s\n", resp.ObjectID)
	c.io.Printf("Updated: %s\n", formatTimestamp(resp.UpdatedAt))
	c.io.Println()
	c.io.Println(formatJSON(resp.State))

	return nil
}
