// Package identity carries the authenticated owner through the request
// context. There is no process-wide session: every request presents its
// own bearer token.
package identity

import (
	"context"
	"time"
)

type Identity struct {
	UserID       uint
	BarbershopID uint
	Role         string
	TokenID      string
	ExpiresAt    time.Time
}

type ctxKey struct{}

func WithContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored by the auth middleware.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
