package client

import (
	"context"
	"sync"
)

// Session supplies the optional bearer token attached to outgoing requests.
// Clear is called when the backend answers 401.
type Session interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// TokenSetter is implemented by sessions that can store a freshly issued
// token. Login uses it when available.
type TokenSetter interface {
	Set(ctx context.Context, token string) error
}

// MemorySession keeps the token in process memory
type MemorySession struct {
	mu    sync.RWMutex
	token string
}

// NewMemorySession creates a session holding token (may be empty)
func NewMemorySession(token string) *MemorySession {
	return &MemorySession{token: token}
}

func (s *MemorySession) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

// SetToken replaces the stored token
func (s *MemorySession) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Set implements TokenSetter
func (s *MemorySession) Set(_ context.Context, token string) error {
	s.SetToken(token)
	return nil
}

func (s *MemorySession) Clear(_ context.Context) error {
	s.SetToken("")
	return nil
}

// NoSession never yields a token
type NoSession struct{}

func (NoSession) Token(context.Context) (string, error) { return "", nil }
func (NoSession) Clear(context.Context) error           { return nil }
