package model

import "context"

// ContextManager moves the authenticated identity in and out of a request
// context. The identity is an explicit typed value, never mutable shared
// request state.
type ContextManager interface {
	SetIdentity(ctx context.Context, identity Identity) context.Context
	GetIdentity(ctx context.Context) (Identity, bool)
}
