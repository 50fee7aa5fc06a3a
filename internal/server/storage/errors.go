package storage

import "errors"

// Common server storage errors
var (
	// ErrObjectNotFound indicates that the object does not exist
	ErrObjectNotFound = errors.New("object not found")
)
