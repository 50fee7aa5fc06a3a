package sync

import (
	"context"

	"github.com/iudanet/deltasync/pkg/api"
)

//go:generate moq -out transport_mock.go . Transport

// Transport delivers patch batches to the remote authority. Implemented over
// HTTP by internal/client/api; mocked in tests.
type Transport interface {
	// SendBatch transmits one ordered batch of patches and returns the
	// server's verdict: zero or more conflicts plus the transferred byte
	// count. A returned error is a transport-level failure and is subject
	// to retry.
	SendBatch(ctx context.Context, patches []api.DeltaPatch) (*api.SyncResponse, error)
}
