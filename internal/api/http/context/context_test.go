package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayboard/dayboard-server/internal/model"
)

func TestManager_SetAndGetIdentity(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	identity := model.Identity{Email: "a@b.c"}
	ctx = m.SetIdentity(ctx, identity)

	got, ok := m.GetIdentity(ctx)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_GetIdentity_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetIdentity(context.Background())
	assert.False(t, ok)
}
