package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/deltasync/internal/client/api"
	"github.com/iudanet/deltasync/internal/client/cli"
	"github.com/iudanet/deltasync/internal/client/events"
	"github.com/iudanet/deltasync/internal/client/iocli"
	"github.com/iudanet/deltasync/internal/client/storage/boltdb"
	"github.com/iudanet/deltasync/internal/client/sync"
	deltaapi "github.com/iudanet/deltasync/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "deltasync-client.db", "Path to local database")
	batchSize := flag.Int("batch", 50, "Max patches per sync batch")
	retries := flag.Int("retries", 3, "Transmission attempts per batch")
	policy := flag.String("policy", "manual", "Conflict policy: server-wins, client-wins, manual")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)

	coordinator, err := sync.NewCoordinator(sync.Config{
		Endpoint:           *serverURL,
		ConflictResolution: sync.Policy(*policy),
		BatchSize:          *batchSize,
		RetryAttempts:      *retries,
	}, apiClient, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The sync queue survives between invocations.
	if err := restoreQueue(ctx, boltStorage, coordinator); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore sync queue: %v\n", err)
		os.Exit(1)
	}

	coordinator.On(events.Conflict, func(payload any) {
		if conflict, ok := payload.(deltaapi.Conflict); ok {
			fmt.Fprintf(os.Stderr, "Conflict detected on object %s\n", conflict.ObjectID)
		}
	})

	c := cli.New(coordinator, apiClient, boltStorage, boltStorage, iocli.NewStdio())

	runErr := c.Run(ctx, command, args[1:])

	if err := persistQueue(ctx, boltStorage, coordinator); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to persist sync queue: %v\n", err)
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func restoreQueue(ctx context.Context, store *boltdb.Storage, coordinator *sync.Coordinator) error {
	patches, err := store.GetPending(ctx)
	if err != nil {
		return err
	}
	coordinator.RestorePending(patches)

	conflicts, err := store.GetConflicts(ctx)
	if err != nil {
		return err
	}
	coordinator.RestoreConflicts(conflicts)

	return nil
}

func persistQueue(ctx context.Context, store *boltdb.Storage, coordinator *sync.Coordinator) error {
	if err := store.SavePending(ctx, coordinator.GetPendingChanges()); err != nil {
		return err
	}
	return store.SaveConflicts(ctx, coordinator.GetConflicts())
}

func printVersion() {
	fmt.Printf("DeltaSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
