package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant/planter/internal/common"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("wrong"))
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("k"), -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("k"))
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	_, err := GetUserIDFromToken("not-a-token", []byte("k"))
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestPasswordHashing(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	require.Len(t, salt, saltLen)

	hash := HashPassword([]byte("hunter2"), salt)
	assert.True(t, CheckPassword(hash, []byte("hunter2"), salt))
	assert.False(t, CheckPassword(hash, []byte("hunter3"), salt))

	other, err := NewSalt()
	require.NoError(t, err)
	assert.False(t, CheckPassword(hash, []byte("hunter2"), other))
}
