package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskRepository(t *testing.T) {
	db := &Connection{}
	repo := NewTaskRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestContentEncoding_RoundTrip(t *testing.T) {
	tests := []string{
		"buy milk",
		"",
		"unicode ✓ and emoji 📝",
		`quotes "inside" and 'more'`,
	}

	for _, content := range tests {
		stored := encodeContent(content)
		decoded, err := decodeContent(stored)
		require.NoError(t, err)
		assert.Equal(t, content, decoded)
	}
}

func TestDecodeContent_Invalid(t *testing.T) {
	_, err := decodeContent("not base64!!!")
	assert.Error(t, err)
}
