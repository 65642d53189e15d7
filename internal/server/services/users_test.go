package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant/planter/internal/common"
	"github.com/verdant/planter/internal/server/config"
	"github.com/verdant/planter/internal/server/repositories/users"
)

func newUserService() *UserService {
	cfg := &config.Config{SecretKey: "test-secret", TokenValidityDuration: time.Hour}
	return NewUserService(users.NewMemoryRepository(), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice@Example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password", string(user.PasswordHash))

	token, err := svc.Login(ctx, "alice@example.com", "password")
	require.NoError(t, err)

	id, err := svc.CurrentUserID(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestRegister_Validation(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "password")
	assert.True(t, errors.Is(err, common.ErrInvalidInput))

	_, err = svc.Register(ctx, "", "password")
	assert.True(t, errors.Is(err, common.ErrInvalidInput))

	_, err = svc.Register(ctx, "a@b.com", "short")
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "password")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "A@B.com", "password2")
	assert.True(t, errors.Is(err, common.ErrLoginAlreadyExists))
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "password")
	require.NoError(t, err)

	// Unknown email and wrong password look the same.
	_, err = svc.Login(ctx, "nobody@b.com", "password")
	assert.True(t, errors.Is(err, common.ErrUnauthorized))

	_, err = svc.Login(ctx, "a@b.com", "wrongpass")
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestProfile(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "a@b.com", "password")
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, user.ID, profile.ID)

	_, err = svc.Profile(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = svc.Profile(ctx, "")
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestCurrentUserID_BadToken(t *testing.T) {
	svc := newUserService()

	_, err := svc.CurrentUserID("not.a.token")
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}
