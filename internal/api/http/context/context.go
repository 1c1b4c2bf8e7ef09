// Package context carries the authenticated identity through a request
// context as a typed value.
package context

import (
	"context"

	"github.com/dayboard/dayboard-server/internal/model"
)

type contextKey int

const identityKey contextKey = iota

var _ model.ContextManager = (*Manager)(nil)

// Manager sets and retrieves the request identity.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentity returns a child context carrying the identity.
func (m *Manager) SetIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity retrieves the identity set by the authentication middleware.
// The boolean is false when the request never passed authentication.
func (m *Manager) GetIdentity(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
