package session

import (
	"context"
	"errors"
)

// ErrNoSessionID is returned when a token is stored without a session id
var ErrNoSessionID = errors.New("no session id in context")

type contextKey struct{}

// WithID returns a copy of ctx carrying the visitor session id
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IDFromContext extracts the session id, or "" when none is set
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
