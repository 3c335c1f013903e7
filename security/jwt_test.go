package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-doctor-chat-app/entity"
	"ai-doctor-chat-app/security"
)

func TestTokenRoundTrip(t *testing.T) {
	jwt := security.NewJWT([]byte("test-secret"))

	user := &entity.User{}
	user.ID = "user-1"

	token, err := jwt.GenerateToken(user)
	require.NoError(t, err)

	userID, err := jwt.GetUserIdFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	issuer := security.NewJWT([]byte("test-secret"))
	verifier := security.NewJWT([]byte("another-secret"))

	user := &entity.User{}
	user.ID = "user-1"

	token, err := issuer.GenerateToken(user)
	require.NoError(t, err)

	_, err = verifier.GetUserIdFromToken(token)
	assert.Error(t, err)
}
