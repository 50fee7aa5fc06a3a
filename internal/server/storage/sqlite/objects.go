package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/deltasync/internal/server/storage"
)

// SaveObject creates or updates an object. State is persisted as JSON; a nil
// state (removed root) is stored as SQL NULL.
func (s *Storage) SaveObject(ctx context.Context, obj *storage.StoredObject) error {
	var state sql.NullString
	if obj.State != nil {
		data, err := json.Marshal(obj.State)
		if err != nil {
			return fmt.Errorf("failed to marshal object state: %w", err)
		}
		state = sql.NullString{String: string(data), Valid: true}
	}

	query := `
		INSERT INTO objects (id, state, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, obj.ObjectID, state, obj.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save object: %w", err)
	}

	return nil
}

// GetObject retrieves a single object by id
// Returns storage.ErrObjectNotFound if the object does not exist
func (s *Storage) GetObject(ctx context.Context, objectID string) (*storage.StoredObject, error) {
	query := `
		SELECT id, state, updated_at
		FROM objects
		WHERE id = ?
	`

	obj := &storage.StoredObject{}
	var state sql.NullString

	err := s.db.QueryRowContext(ctx, query, objectID).Scan(
		&obj.ObjectID,
		&state,
		&obj.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	if state.Valid {
		if err := json.Unmarshal([]byte(state.String), &obj.State); err != nil {
			return nil, fmt.Errorf("failed to unmarshal object state: %w", err)
		}
	}

	return obj, nil
}

// ListObjects returns all stored objects ordered by id
func (s *Storage) ListObjects(ctx context.Context) ([]*storage.StoredObject, error) {
	query := `
		SELECT id, state, updated_at
		FROM objects
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var objects []*storage.StoredObject
	for rows.Next() {
		obj := &storage.StoredObject{}
		var state sql.NullString

		if err := rows.Scan(&obj.ObjectID, &state, &obj.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan object: %w", err)
		}

		if state.Valid {
			if err := json.Unmarshal([]byte(state.String), &obj.State); err != nil {
				return nil, fmt.Errorf("failed to unmarshal object state: %w", err)
			}
		}

		objects = append(objects, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate objects: %w", err)
	}

	return objects, nil
}
