package cli

import (
	"context"
)

func (c *Cli) runPending(_ context.Context) error {
	patches := c.coordinator.GetPendingChanges()

	if len(patches) == 0 {
		c.io.Println("No pending changes.")
		return nil
	}

	c.io.Printf("Pending changes (%d):\n", len(patches))
	c.io.Println()
	for _, patch := range patches {
		c.io.Printf("  %s  %d op(s)  recorded %s\n",
			patch.ObjectID, len(patch.Operations), formatTimestamp(patch.Timestamp))
	}
	c.io.Println()
	c.io.Println("Run 'deltasync sync' to push them to the server.")

	return nil
}
