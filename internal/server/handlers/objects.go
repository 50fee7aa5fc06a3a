package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/deltasync/internal/server/storage"
	"github.com/iudanet/deltasync/pkg/api"
)

// ObjectsHandler serves read access to the authoritative object state
type ObjectsHandler struct {
	logger  *slog.Logger
	storage storage.ObjectStorage
}

// NewObjectsHandler creates a new objects handler
func NewObjectsHandler(logger *slog.Logger, objStorage storage.ObjectStorage) *ObjectsHandler {
	return &ObjectsHandler{
		logger:  logger,
		storage: objStorage,
	}
}

// HandleObject processes GET /api/v1/objects/{id}
// Clients use it to refresh their local snapshot cache after a server-wins
// or manual conflict resolution.
func (h *ObjectsHandler) HandleObject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	objectID := strings.TrimPrefix(r.URL.Path, "/api/v1/objects/")
	if objectID == "" || strings.Contains(objectID, "/") {
		writeError(w, h.logger, http.StatusBadRequest, "invalid object id")
		return
	}

	obj, err := h.storage.GetObject(r.Context(), objectID)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "object not found")
			return
		}
		h.logger.Error("failed to get object", "object_id", objectID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := api.ObjectResponse{
		ObjectID:  obj.ObjectID,
		State:     obj.State,
		UpdatedAt: obj.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode object response", "error", err)
	}
}
