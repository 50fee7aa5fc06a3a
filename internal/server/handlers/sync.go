// Package handlers implements the HTTP endpoints of the deltasync server.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/deltasync/internal/diff"
	"github.com/iudanet/deltasync/internal/server/storage"
	"github.com/iudanet/deltasync/pkg/api"
)

// SyncHandler handles batched patch uploads from clients
type SyncHandler struct {
	logger  *slog.Logger
	storage storage.ObjectStorage
	now     func() time.Time
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, objStorage storage.ObjectStorage) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: objStorage,
		now:     time.Now,
	}
}

// HandleSync processes POST /api/v1/sync
// Applies each patch of the batch to the authoritative store and reports a
// conflict for every object that changed after the patch was produced.
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("failed to read sync request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var req api.SyncRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Warn("failed to decode sync request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.logger.Info("sync request", "patches", len(req.Patches))

	conflicts := []api.Conflict{}
	for _, patch := range req.Patches {
		conflict, err := h.applyPatch(r.Context(), patch)
		if err != nil {
			h.logger.Error("failed to apply patch", "object_id", patch.ObjectID, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
			return
		}
		if conflict != nil {
			conflicts = append(conflicts, *conflict)
		}
	}

	resp := api.SyncResponse{
		Conflicts:        conflicts,
		BytesTransferred: int64(len(body)),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode sync response", "error", err)
	}

	h.logger.Info("sync completed",
		"received_patches", len(req.Patches),
		"conflicts", len(conflicts),
		"bytes", len(body))
}

// applyPatch applies one patch to the stored object. When the stored object
// was modified after the patch was produced, the authority has diverged from
// the client's base and a conflict is reported instead of applying.
func (h *SyncHandler) applyPatch(ctx context.Context, patch api.DeltaPatch) (*api.Conflict, error) {
	obj, err := h.storage.GetObject(ctx, patch.ObjectID)
	if err != nil {
		if !errors.Is(err, storage.ErrObjectNotFound) {
			return nil, err
		}
		obj = &storage.StoredObject{ObjectID: patch.ObjectID}
	}

	if obj.UpdatedAt > patch.Timestamp {
		return &api.Conflict{
			ObjectID:      patch.ObjectID,
			ClientVersion: diff.Apply(obj.State, patch.Operations),
			ServerVersion: obj.State,
			Timestamp:     h.now().UnixMilli(),
		}, nil
	}

	obj.State = diff.Apply(obj.State, patch.Operations)
	obj.UpdatedAt = h.now().UnixMilli()

	return nil, h.storage.SaveObject(ctx, obj)
}

// writeError sends a JSON error envelope
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := api.ErrorResponse{Error: message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}
