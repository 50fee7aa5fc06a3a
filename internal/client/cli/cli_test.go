package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/deltasync/internal/client/api"
	"github.com/iudanet/deltasync/internal/client/iocli"
	"github.com/iudanet/deltasync/internal/client/storage"
	"github.com/iudanet/deltasync/internal/client/sync"
	"github.com/iudanet/deltasync/pkg/api"
)

// cliFixture wires a Cli to a real coordinator and mocked edges.
type cliFixture struct {
	cli       *Cli
	coord     *sync.Coordinator
	transport *sync.TransportMock
	apiClient *clientapi.ClientAPIMock
	snapshots *storage.SnapshotStorageMock
	metadata  *storage.MetadataStorageMock
	io        *iocli.IOMock
	out       *strings.Builder
}

func newTestCli(t *testing.T) *cliFixture {
	t.Helper()
	return newTestCliBatch(t, 50)
}

func newTestCliBatch(t *testing.T, batchSize int) *cliFixture {
	t.Helper()

	transport := &sync.TransportMock{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	coord, err := sync.NewCoordinator(sync.Config{
		Endpoint:           "http://localhost:8080",
		ConflictResolution: sync.Manual,
		BatchSize:          batchSize,
		RetryAttempts:      1,
	}, transport, logger)
	require.NoError(t, err)

	out := &strings.Builder{}
	ioMock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
	}

	apiClient := &clientapi.ClientAPIMock{}
	snapshots := &storage.SnapshotStorageMock{}
	metadata := &storage.MetadataStorageMock{}

	return &cliFixture{
		cli:       New(coord, apiClient, snapshots, metadata, ioMock),
		coord:     coord,
		transport: transport,
		apiClient: apiClient,
		snapshots: snapshots,
		metadata:  metadata,
		io:        ioMock,
		out:       out,
	}
}

func TestParseJSONValue(t *testing.T) {
	tests := []struct {
		expected any
		name     string
		input    string
		wantErr  bool
	}{
		{
			name:     "object",
			input:    `{"name":"alice","age":30}`,
			expected: map[string]any{"name": "alice", "age": float64(30)},
		},
		{
			name:     "array",
			input:    `[1,2,3]`,
			expected: []any{float64(1), float64(2), float64(3)},
		},
		{
			name:     "null",
			input:    `null`,
			expected: nil,
		},
		{
			name:    "invalid",
			input:   `{broken`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseJSONValue(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestRunCreate_RecordsPendingChange(t *testing.T) {
	f := newTestCli(t)

	err := f.cli.runCreate(context.Background(), []string{`{"name":"alice"}`})
	require.NoError(t, err)

	patches := f.coord.GetPendingChanges()
	require.Len(t, patches, 1)
	require.Len(t, patches[0].Operations, 1)
	assert.Equal(t, api.OpAdd, patches[0].Operations[0].Kind)
	assert.Empty(t, patches[0].Operations[0].Path)
	assert.Contains(t, f.out.String(), "Created object")
}

func TestRunCreate_RejectsInvalidJSON(t *testing.T) {
	f := newTestCli(t)

	err := f.cli.runCreate(context.Background(), []string{`{broken`})
	require.Error(t, err)
	assert.Empty(t, f.coord.GetPendingChanges())
}

func TestRunSet_DiffsAgainstCachedSnapshot(t *testing.T) {
	f := newTestCli(t)
	f.snapshots.GetSnapshotFunc = func(ctx context.Context, objectID string) (any, error) {
		return map[string]any{"name": "alice", "age": float64(30)}, nil
	}

	err := f.cli.runSet(context.Background(), []string{"obj-1", `{"name":"bob","age":30}`})
	require.NoError(t, err)

	patches := f.coord.GetPendingChanges()
	require.Len(t, patches, 1)
	assert.Equal(t, "obj-1", patches[0].ObjectID)
	require.Len(t, patches[0].Operations, 1)
	assert.Equal(t, api.OpReplace, patches[0].Operations[0].Kind)
	assert.Equal(t, []string{"name"}, patches[0].Operations[0].Path)
}

func TestRunSet_NewObjectDiffsAgainstNil(t *testing.T) {
	f := newTestCli(t)
	f.snapshots.GetSnapshotFunc = func(ctx context.Context, objectID string) (any, error) {
		return nil, storage.ErrSnapshotNotFound
	}

	err := f.cli.runSet(context.Background(), []string{"obj-1", `{"name":"alice"}`})
	require.NoError(t, err)

	patches := f.coord.GetPendingChanges()
	require.Len(t, patches, 1)
	require.Len(t, patches[0].Operations, 1)
	assert.Equal(t, api.OpAdd, patches[0].Operations[0].Kind)
	assert.Empty(t, patches[0].Operations[0].Path)
}

func TestRunSet_RevertToBaseDiscardsPending(t *testing.T) {
	f := newTestCli(t)
	base := map[string]any{"name": "alice"}
	f.snapshots.GetSnapshotFunc = func(ctx context.Context, objectID string) (any, error) {
		return base, nil
	}

	// First edit queues a patch.
	require.NoError(t, f.cli.runSet(context.Background(), []string{"obj-1", `{"name":"bob"}`}))
	require.Len(t, f.coord.GetPendingChanges(), 1)

	// Setting the object back to its base state clears the queue.
	require.NoError(t, f.cli.runSet(context.Background(), []string{"obj-1", `{"name":"alice"}`}))
	assert.Empty(t, f.coord.GetPendingChanges())
	assert.Contains(t, f.out.String(), "No changes")
}

func TestRunSet_RepeatedEditsKeepSingleDelta(t *testing.T) {
	f := newTestCli(t)
	f.snapshots.GetSnapshotFunc = func(ctx context.Context, objectID string) (any, error) {
		return map[string]any{"a": float64(1)}, nil
	}

	require.NoError(t, f.cli.runSet(context.Background(), []string{"obj-1", `{"a":1,"b":2}`}))
	require.NoError(t, f.cli.runSet(context.Background(), []string{"obj-1", `{"a":1,"b":2,"c":3}`}))

	patches := f.coord.GetPendingChanges()
	require.Len(t, patches, 1)
	// The second patch is a fresh delta from the same base, so it carries
	// both added keys.
	assert.Len(t, patches[0].Operations, 2)
}

func TestRunDelete_RecordsRootRemove(t *testing.T) {
	f := newTestCli(t)
	f.snapshots.GetSnapshotFunc = func(ctx context.Context, objectID string) (any, error) {
		return map[string]any{"name": "alice"}, nil
	}

	err := f.cli.runDelete(context.Background(), []string{"obj-1"})
	require.NoError(t, err)

	patches := f.coord.GetPendingChanges()
	require.Len(t, patches, 1)
	require.Len(t, patches[0].Operations, 1)
	assert.Equal(t, api.OpRemove, patches[0].Operations[0].Kind)
	assert.Empty(t, patches[0].Operations[0].Path)
}

func TestRunDelete_UnsyncedObjectDiscardsPending(t *testing.T) {
	f := newTestCli(t)
	f.snapshots.GetSnapshotFunc = func(ctx context.Context, objectID string) (any, error) {
		return nil, storage.ErrSnapshotNotFound
	}

	f.coord.RecordChange("obj-1", nil, map[string]any{"name": "alice"})
	require.Len(t, f.coord.GetPendingChanges(), 1)

	err := f.cli.runDelete(context.Background(), []string{"obj-1"})
	require.NoError(t, err)

	assert.Empty(t, f.coord.GetPendingChanges())
	assert.Contains(t, f.out.String(), "Discarded unsynced object")
}

func TestRunStatus_ReportsCountsAndReachability(t *testing.T) {
	f := newTestCli(t)
	f.metadata.GetLastSyncTimeFunc = func(ctx context.Context) (int64, error) {
		return 0, nil
	}
	f.apiClient.HealthFunc = func(ctx context.Context) error {
		return nil
	}

	f.coord.RecordChange("obj-1", nil, map[string]any{"x": float64(1)})

	err := f.cli.runStatus(context.Background())
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "Last sync: never")
	assert.Contains(t, out, "1 change(s) waiting")
	assert.Contains(t, out, "Conflicts: none")
	assert.Contains(t, out, "Server:    reachable")
}

func TestRunStatus_UnreachableServer(t *testing.T) {
	f := newTestCli(t)
	f.metadata.GetLastSyncTimeFunc = func(ctx context.Context) (int64, error) {
		return 1724933911000, nil
	}
	f.apiClient.HealthFunc = func(ctx context.Context) error {
		return fmt.Errorf("connection refused")
	}

	err := f.cli.runStatus(context.Background())
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "unreachable")
}
