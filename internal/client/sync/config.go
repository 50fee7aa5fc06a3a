package sync

import (
	"errors"
	"fmt"
)

// Policy selects how server-reported conflicts are handled.
type Policy string

const (
	// ServerWins discards the local pending patch and accepts remote state.
	ServerWins Policy = "server-wins"
	// ClientWins keeps the local patch queued for the next attempt.
	ClientWins Policy = "client-wins"
	// Manual queues the conflict for explicit resolution by the caller.
	Manual Policy = "manual"
)

// Config holds the immutable settings of one coordinator instance.
type Config struct {
	// Endpoint is the base URL of the sync server. Informational here; the
	// transport passed to the coordinator is already bound to it.
	Endpoint string

	// ConflictResolution is the policy applied to every conflict.
	ConflictResolution Policy

	// BatchSize is the maximum number of patches per transmission.
	BatchSize int

	// RetryAttempts is the number of transmissions tried per batch before
	// the whole reconciliation attempt fails.
	RetryAttempts int
}

// Validate checks the configuration for values the coordinator cannot
// operate with.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return errors.New("batch size must be positive")
	}
	if c.RetryAttempts <= 0 {
		return errors.New("retry attempts must be positive")
	}
	switch c.ConflictResolution {
	case ServerWins, ClientWins, Manual:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.ConflictResolution)
	}
	return nil
}
