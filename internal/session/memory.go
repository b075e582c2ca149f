package session

import (
	"context"
	"sync"
)

// MemoryStore is the in-process counterpart of RedisStore, keyed the same
// way by the session id in the context
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
	roles  map[string]string
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]string),
		roles:  make(map[string]string),
	}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[IDFromContext(ctx)], nil
}

func (s *MemoryStore) Set(ctx context.Context, token string) error {
	id := IDFromContext(ctx)
	if id == "" {
		return ErrNoSessionID
	}

	s.mu.Lock()
	s.tokens[id] = token
	delete(s.roles, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Role(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roles[IDFromContext(ctx)], nil
}

func (s *MemoryStore) SetRole(ctx context.Context, role string) error {
	id := IDFromContext(ctx)
	if id == "" {
		return ErrNoSessionID
	}

	s.mu.Lock()
	s.roles[id] = role
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	id := IDFromContext(ctx)

	s.mu.Lock()
	delete(s.tokens, id)
	delete(s.roles, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
func (s *MemoryStore) Close() error               { return nil }
