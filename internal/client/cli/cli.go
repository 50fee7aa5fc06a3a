// Package cli implements the deltasync client commands.
package cli

import (
	"fmt"

	"github.com/iudanet/deltasync/internal/client/api"
	"github.com/iudanet/deltasync/internal/client/iocli"
	"github.com/iudanet/deltasync/internal/client/storage"
	"github.com/iudanet/deltasync/internal/client/sync"
)

type Cli struct {
	coordinator *sync.Coordinator
	apiClient   api.ClientAPI
	snapshots   storage.SnapshotStorage
	metadata    storage.MetadataStorage
	io          iocli.IO
}

func New(
	coordinator *sync.Coordinator,
	apiClient api.ClientAPI,
	snapshots storage.SnapshotStorage,
	metadata storage.MetadataStorage,
	io iocli.IO,
) *Cli {
	return &Cli{
		coordinator: coordinator,
		apiClient:   apiClient,
		snapshots:   snapshots,
		metadata:    metadata,
		io:          io,
	}
}

func PrintUsage() {
	fmt.Println("DeltaSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  deltasync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --server URL         Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH            Path to local database (default: deltasync-client.db)")
	fmt.Println("  --batch N            Max patches per sync batch (default: 50)")
	fmt.Println("  --retries N          Transmission attempts per batch (default: 3)")
	fmt.Println("  --policy NAME        Conflict policy: server-wins, client-wins, manual")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  create [json]           Create a new object, optionally with an initial state")
	fmt.Println("  set <id> <json>         Record a local change to an object")
	fmt.Println("  delete <id>             Record the deletion of an object")
	fmt.Println("  get <id>                Fetch the server state of an object into the local cache")
	fmt.Println("  list                    List locally cached objects")
	fmt.Println("  pending                 Show changes waiting to be synchronized")
	fmt.Println("  sync                    Push pending changes to the server")
	fmt.Println("  conflicts               Show conflicts awaiting manual resolution")
	fmt.Println("  resolve <id> <ts>       Resolve a conflict, choosing which version survives")
	fmt.Println("  status                  Show sync status")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  deltasync create '{\"name\":\"alice\",\"age\":30}'")
	fmt.Println("  deltasync set b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 '{\"name\":\"bob\",\"age\":30}'")
	fmt.Println("  deltasync sync")
	fmt.Println("  deltasync --policy manual sync")
	fmt.Println("  deltasync resolve b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 1724933911000")
	fmt.Println("  deltasync --server https://example.com status")
}
