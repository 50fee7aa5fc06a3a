package sync

import (
	"github.com/iudanet/deltasync/internal/client/events"
	"github.com/iudanet/deltasync/pkg/api"
)

// resolveWithPolicy applies the coordinator's conflict policy to one
// server-reported conflict. The policy is fixed per coordinator and applied
// identically to every conflict, so resolution is deterministic.
func (c *Coordinator) resolveWithPolicy(conflict api.Conflict) {
	switch c.cfg.ConflictResolution {
	case ServerWins:
		// Accept the remote state: the local patch is discarded and the
		// conflict is considered settled.
		c.pending.Remove(conflict.ObjectID)
		c.logger.Info("conflict resolved, server wins", "object_id", conflict.ObjectID)

	case ClientWins:
		// Keep the local patch queued and advance its timestamp to the
		// authority's conflict time. Without the restamp the retransmitted
		// patch would lose to the same server state again, since the server
		// rejects any patch older than its stored object.
		c.pending.Restamp(conflict.ObjectID, conflict.Timestamp)
		c.logger.Info("conflict deferred, client wins", "object_id", conflict.ObjectID)

	case Manual:
		c.mu.Lock()
		c.unresolved = append(c.unresolved, conflict)
		c.mu.Unlock()

		c.logger.Info("conflict queued for manual resolution",
			"object_id", conflict.ObjectID,
			"timestamp", conflict.Timestamp)
		c.bus.Publish(events.Conflict, conflict)
	}
}

// ResolveConflict settles a manually queued conflict, matched by object id
// and timestamp. Both the unresolved entry and the object's pending patch
// are removed; which side's state survives is the caller's decision made
// before this call.
func (c *Coordinator) ResolveConflict(conflict api.Conflict) error {
	c.mu.Lock()
	found := false
	kept := c.unresolved[:0]
	for _, u := range c.unresolved {
		if u.ObjectID == conflict.ObjectID && u.Timestamp == conflict.Timestamp {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	c.unresolved = kept
	c.mu.Unlock()

	if !found {
		return ErrConflictNotFound
	}

	c.pending.Remove(conflict.ObjectID)
	c.logger.Info("conflict resolved manually", "object_id", conflict.ObjectID)

	return nil
}
