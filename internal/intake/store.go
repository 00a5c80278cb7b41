package intake

import (
	"context"
	"sync"
)

// SentStore records lead keys that were already delivered. Implementations
// must be safe for concurrent use; keys are never removed.
type SentStore interface {
	// AlreadySent checks if a lead with this key was delivered before.
	AlreadySent(ctx context.Context, key string) (bool, error)
	// MarkSent records the key after a confirmed delivery.
	MarkSent(ctx context.Context, key string) error
}

// MemorySentStore keeps sent keys in process memory. A restart clears it,
// which is an accepted limitation of single-instance deployments.
type MemorySentStore struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

func NewMemorySentStore() *MemorySentStore {
	return &MemorySentStore{keys: make(map[string]struct{})}
}

func (s *MemorySentStore) AlreadySent(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[key]
	return ok, nil
}

func (s *MemorySentStore) MarkSent(_ context.Context, key string) error {
	s.mu.Lock()
	s.keys[key] = struct{}{}
	s.mu.Unlock()
	return nil
}
