package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	Configure("test-jwt-secret", "test-master-secret")

	token, err := CreateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = VerifyToken(token + "x")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("geheim")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("geheim", hash))
	assert.False(t, CheckPasswordHash("falsch", hash))
}

func TestHMACKey(t *testing.T) {
	Configure("test-jwt-secret", "test-master-secret")

	key := GenerateHMACKey("planning-team")
	require.True(t, strings.HasPrefix(key, "planning-team."))

	userID, err := VerifyHMACKey(key)
	require.NoError(t, err)
	assert.Equal(t, "planning-team", userID)

	_, err = VerifyHMACKey("planning-team.deadbeef")
	assert.Error(t, err)

	_, err = VerifyHMACKey("no-signature-part")
	assert.Error(t, err)
}
