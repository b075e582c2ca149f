package session

import (
	"context"

	"github.com/inframe/campus-portal/pkg/client"
)

// Store is a client.Session that can also be written to and health checked.
// Role caches the backend role of the current token; Set and Clear drop it.
type Store interface {
	client.Session
	Set(ctx context.Context, token string) error
	Role(ctx context.Context) (string, error)
	SetRole(ctx context.Context, role string) error
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
