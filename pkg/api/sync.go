package api

// OpKind identifies the type of a single patch operation.
type OpKind string

const (
	// OpAdd introduces a value at a path that was absent before.
	OpAdd OpKind = "add"
	// OpRemove deletes the value at a path.
	OpRemove OpKind = "remove"
	// OpReplace overwrites an existing value with a new one.
	OpReplace OpKind = "replace"
)

// Operation represents one atomic edit at a structural location within a tree
// of objects, arrays and primitives. Value is set for add/replace and absent
// for remove. An empty Path addresses the root of the object.
type Operation struct {
	Value any      `json:"value,omitempty"`
	Kind  OpKind   `json:"kind"`
	Path  []string `json:"path"`
}

// DeltaPatch is the set of outstanding operations for one object identity.
// Timestamp records when the patch was produced (ms since epoch), not when
// it is transmitted.
type DeltaPatch struct {
	ObjectID   string      `json:"object_id"`
	Operations []Operation `json:"operations"`
	Timestamp  int64       `json:"timestamp"`
}

// Conflict is a server-reported disagreement for one object identity.
// ClientVersion is the state the client's patch would have produced,
// ServerVersion is the authoritative state the server currently holds.
type Conflict struct {
	ClientVersion any    `json:"client_version"`
	ServerVersion any    `json:"server_version"`
	ObjectID      string `json:"object_id"`
	Timestamp     int64  `json:"timestamp"`
}

// SyncRequest carries one batch of patches from the client
type SyncRequest struct {
	Patches []DeltaPatch `json:"patches"`
}

// SyncResponse is the server's verdict on one batch
type SyncResponse struct {
	Conflicts        []Conflict `json:"conflicts"`
	BytesTransferred int64      `json:"bytes_transferred"`
}

// ObjectResponse carries the authoritative state of a single object
type ObjectResponse struct {
	State     any    `json:"state"`
	ObjectID  string `json:"object_id"`
	UpdatedAt int64  `json:"updated_at"`
}

// ErrorResponse represents an error reply from the server
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
