// Package realtime tracks live websocket connections and fans events out to
// them. Presence is best-effort: a user with no registered connection is
// simply offline and pushes to them are dropped.
package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// ConnStore tracks which connections belong to which user. Implementations
// must be safe for concurrent use. The in-memory store below is the default;
// a shared store can replace it when the server runs more than one instance.
type ConnStore interface {
	// Register binds a connection to a user. Registering the same connection
	// twice is a no-op.
	Register(userID uuid.UUID, connID string)

	// Deregister removes a connection. Unknown connections are ignored, so a
	// double disconnect is harmless.
	Deregister(connID string)

	// ConnectionsFor returns the connection IDs of every listed user that is
	// currently online.
	ConnectionsFor(userIDs ...uuid.UUID) []string
}

// MemoryConnStore is a process-local ConnStore.
type MemoryConnStore struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]map[string]struct{}
	byConn map[string]uuid.UUID
}

// NewMemoryConnStore creates an empty in-memory connection store.
func NewMemoryConnStore() *MemoryConnStore {
	return &MemoryConnStore{
		byUser: make(map[uuid.UUID]map[string]struct{}),
		byConn: make(map[string]uuid.UUID),
	}
}

func (s *MemoryConnStore) Register(userID uuid.UUID, connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byConn[connID]; ok {
		if prev == userID {
			return
		}
		// Connection re-registered under a different user: drop the old binding.
		s.removeLocked(connID, prev)
	}

	if s.byUser[userID] == nil {
		s.byUser[userID] = make(map[string]struct{})
	}
	s.byUser[userID][connID] = struct{}{}
	s.byConn[connID] = userID
}

func (s *MemoryConnStore) Deregister(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.byConn[connID]
	if !ok {
		return
	}
	s.removeLocked(connID, userID)
}

func (s *MemoryConnStore) ConnectionsFor(userIDs ...uuid.UUID) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for _, uid := range userIDs {
		for connID := range s.byUser[uid] {
			out = append(out, connID)
		}
	}
	return out
}

func (s *MemoryConnStore) removeLocked(connID string, userID uuid.UUID) {
	delete(s.byConn, connID)
	if set, ok := s.byUser[userID]; ok {
		delete(set, connID)
		if len(set) == 0 {
			delete(s.byUser, userID)
		}
	}
}
