package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, VerifyPassword("s3cret-password", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("same-password", h1))
	assert.True(t, VerifyPassword("same-password", h2))
}

func TestPasswordTruncatedAt72Bytes(t *testing.T) {
	// bcrypt ignores everything past byte 72; two passwords sharing their
	// first 72 bytes must validate against each other's hashes so hashes
	// issued before the explicit truncation keep working.
	prefix := strings.Repeat("a", 72)
	long := prefix + "tail-that-is-ignored"

	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(prefix, hash))
	assert.True(t, VerifyPassword(prefix+"completely-different-tail", hash))

	// A difference inside the first 72 bytes still fails
	assert.False(t, VerifyPassword(strings.Repeat("b", 72), hash))
}
