package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	pendingCount := len(c.coordinator.GetPendingChanges())
	conflictCount := len(c.coordinator.GetConflicts())

	lastSync, err := c.metadata.GetLastSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}

	if lastSync == 0 {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", formatTimestamp(lastSync))
	}

	if pendingCount > 0 {
		c.io.Printf("Pending:   %d change(s) waiting to be synchronized\n", pendingCount)
	} else {
		c.io.Println("Pending:   none")
	}

	if conflictCount > 0 {
		c.io.Printf("Conflicts: %d awaiting manual resolution\n", conflictCount)
	} else {
		c.io.Println("Conflicts: none")
	}

	c.io.Println()
	if err := c.apiClient.Health(ctx); err != nil {
		c.io.Printf("Server:    unreachable (%v)\n", err)
	} else {
		c.io.Println("Server:    reachable")
	}

	return nil
}
