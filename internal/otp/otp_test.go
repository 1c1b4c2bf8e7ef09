package otp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SixDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestHashAndVerify(t *testing.T) {
	code, err := Generate()
	require.NoError(t, err)

	hash, err := Hash(code)
	require.NoError(t, err)
	assert.NotEqual(t, code, hash)

	assert.True(t, Verify(code, hash))
	assert.False(t, Verify("000000", hash))
}

func TestVerify_GarbageHash(t *testing.T) {
	assert.False(t, Verify("123456", "not a bcrypt hash"))
}
