package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-doctor-chat-app/security"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := security.HashPassword("pass1234")
	require.NoError(t, err)

	assert.NotEqual(t, "pass1234", hash)
	assert.True(t, security.ComparePassword(hash, "pass1234"))
	assert.False(t, security.ComparePassword(hash, "pass12345"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := security.HashPassword("pass1234")
	require.NoError(t, err)
	second, err := security.HashPassword("pass1234")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}
