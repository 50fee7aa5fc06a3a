package cli

import (
	"context"
)

func (c *Cli) runConflicts(_ context.Context) error {
	conflicts := c.coordinator.GetConflicts()

	if len(conflicts) == 0 {
		c.io.Println("No unresolved conflicts.")
		return nil
	}

	c.io.Printf("Unresolved conflicts (%d):\n", len(conflicts))

	for _, conflict := range conflicts {
		c.io.Println()
		c.io.Printf("Object:    %s\n", conflict.ObjectID)
		c.io.Printf("Timestamp: %d (%s)\n", conflict.Timestamp, formatTimestamp(conflict.Timestamp))
		c.io.Println("Client version:")
		c.io.Println(formatJSON(conflict.ClientVersion))
		c.io.Println("Server version:")
		c.io.Println(formatJSON(conflict.ServerVersion))
	}

	c.io.Println()
	c.io.Println("Run 'deltasync resolve <id> <timestamp>' to settle a conflict.")

	return nil
}
