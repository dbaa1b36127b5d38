package utils_test

import (
	"testing"

	"acelerador/config"
	"acelerador/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	config.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("user-1")
	require.NoError(t, err)

	_, err = utils.ParseToken(token + "x")
	assert.Error(t, err)

	_, err = utils.ParseToken("not-a-token")
	assert.Error(t, err)

	// A token signed under another secret must not verify
	config.JWTSecret = "other-secret"
	_, err = utils.ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("s3nha-forte")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nha-forte", hash)

	assert.True(t, utils.CheckPasswordHash("s3nha-forte", hash))
	assert.False(t, utils.CheckPasswordHash("senha-errada", hash))
}
