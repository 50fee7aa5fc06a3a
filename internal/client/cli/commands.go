package cli

import (
	"context"
	"fmt"
	"os"
)

// Run dispatches one command. The caller handles the exit code so queue
// state can be persisted even when a command fails.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "create":
		return c.runCreate(ctx, args)
	case "set":
		return c.runSet(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "list":
		return c.runList(ctx)
	case "pending":
		return c.runPending(ctx)
	case "sync":
		return c.runSync(ctx)
	case "conflicts":
		return c.runConflicts(ctx)
	case "resolve":
		return c.runResolve(ctx, args)
	case "status":
		return c.runStatus(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
