// Package auth issues and validates bearer tokens, hashes passwords, and
// carries the authenticated principal through a request context.
package auth

import (
	"context"
	"errors"
)

// ErrNoPrincipal is returned when a context carries no authenticated principal.
var ErrNoPrincipal = errors.New("no authenticated principal in context")

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID int64
	Name   string
	Login  string
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the principal stored by WithPrincipal.
func PrincipalFrom(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || p.UserID == 0 {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}
