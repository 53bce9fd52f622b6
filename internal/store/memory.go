// internal/store/memory.go
//
// In-memory implementation of the session blob store.
// Holds one serialized game session per player between requests. The store
// never interprets the bytes; encoding and invariant checks belong to the
// game package, which keeps this layer swappable for Redis, SQL, etc.
//
// Characteristics:
//   - Blobs keyed by player id in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Save copies the blob both ways so callers cannot alias stored bytes.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when a player has no stored session.
var ErrNotFound = errors.New("store: session not found")

// Store defines persistence for serialized game sessions, one per player.
// The design assumes at most one in-flight mutation per player; this
// implementation serializes access with a mutex, and any distributed
// implementation must provide an equivalent guarantee at its boundary.
type Store interface {
	// Save persists or replaces a player's session blob.
	Save(ctx context.Context, playerID string, blob []byte) error

	// Get retrieves a player's session blob.
	// Returns ErrNotFound if the player has no game in progress.
	Get(ctx context.Context, playerID string) ([]byte, error)

	// Delete discards a player's session blob. Deleting a missing blob is a
	// no-op: discarding is how corrupt sessions are handled, and those must
	// never fail.
	Delete(ctx context.Context, playerID string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards blobs map
	blobs map[string][]byte // keyed by player id
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{blobs: make(map[string][]byte)}
}

// Save stores a defensive copy of the blob.
func (m *memory) Save(ctx context.Context, playerID string, blob []byte) error {
	cp := make([]byte, len(blob))
	copy(cp, blob)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[playerID] = cp
	return nil
}

// Get returns a copy of the stored blob or ErrNotFound.
func (m *memory) Get(ctx context.Context, playerID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[playerID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

// Delete removes the player's blob if present.
func (m *memory) Delete(ctx context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, playerID)
	return nil
}
