package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long an unused token is kept
const DefaultTTL = 7 * 24 * time.Hour

// RedisStore keeps per-visitor admin tokens in Redis under
// campus:session:{id}:token, and the role resolved for that token under
// campus:session:{id}:role. The visitor id is taken from the context.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(address, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStoreFromClient(client), nil
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: DefaultTTL}
}

func tokenKey(id string) string {
	return fmt.Sprintf("campus:session:%s:token", id)
}

func roleKey(id string) string {
	return fmt.Sprintf("campus:session:%s:role", id)
}

// Token returns the token stored for the session in ctx. A context without
// a session id or an unknown session yields an empty token.
func (s *RedisStore) Token(ctx context.Context) (string, error) {
	id := IDFromContext(ctx)
	if id == "" {
		return "", nil
	}

	token, err := s.client.Get(ctx, tokenKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return token, nil
}

// Set stores token for the session in ctx and forgets the cached role of
// the previous token
func (s *RedisStore) Set(ctx context.Context, token string) error {
	id := IDFromContext(ctx)
	if id == "" {
		return ErrNoSessionID
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tokenKey(id), token, s.ttl)
		pipe.Del(ctx, roleKey(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

// Role returns the cached role for the session in ctx, or ""
func (s *RedisStore) Role(ctx context.Context) (string, error) {
	id := IDFromContext(ctx)
	if id == "" {
		return "", nil
	}

	role, err := s.client.Get(ctx, roleKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session role: %w", err)
	}
	return role, nil
}

// SetRole caches the role of the current token
func (s *RedisStore) SetRole(ctx context.Context, role string) error {
	id := IDFromContext(ctx)
	if id == "" {
		return ErrNoSessionID
	}

	if err := s.client.Set(ctx, roleKey(id), role, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session role: %w", err)
	}
	return nil
}

// Clear removes the token and role for the session in ctx
func (s *RedisStore) Clear(ctx context.Context) error {
	id := IDFromContext(ctx)
	if id == "" {
		return nil
	}

	if err := s.client.Del(ctx, tokenKey(id), roleKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}

	slog.Info("session token cleared", "session_id", id)
	return nil
}

// Ping verifies Redis connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
