package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComponent(t *testing.T) {
	component, err := NewComponent()
	require.NoError(t, err)

	// bcrypt output is 60 characters, the component keeps the tail past 29.
	assert.Len(t, component, 31)
	assert.False(t, strings.HasPrefix(component, "$2a$"))
}

func TestNewComponent_Unique(t *testing.T) {
	a, err := NewComponent()
	require.NoError(t, err)
	b, err := NewComponent()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
