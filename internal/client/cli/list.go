package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	ids, err := c.snapshots.ListSnapshots(ctx)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(ids) == 0 {
		c.io.Println("No cached objects.")
		c.io.Println()
		c.io.Println("Use 'deltasync create' or 'deltasync get <id>' to populate the cache.")
		return nil
	}

	c.io.Printf("Cached objects (%d):\n", len(ids))
	c.io.Println()
	for _, id := range ids {
		c.io.Printf("  %s\n", id)
	}

	return nil
}
