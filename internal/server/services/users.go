// Package services contains the server-side business logic: account
// registration and login, plant creation and queries, proximity checks,
// location tooling, and photo storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdant/planter/internal/common"
	"github.com/verdant/planter/internal/server/auth"
	"github.com/verdant/planter/internal/server/config"
	"github.com/verdant/planter/internal/server/models"
	"github.com/verdant/planter/internal/server/repositories/users"
)

// UserService is the identity-provider surface: it creates accounts,
// verifies credentials, and mints access tokens.
type UserService struct {
	repo          users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates an account. A taken email yields ErrLoginAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", common.ErrInvalidInput)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password too short", common.ErrInvalidInput)
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: auth.HashPassword([]byte(password), salt),
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// Login verifies credentials and returns a signed access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, []byte(password), user.Salt) {
		return "", common.ErrUnauthorized
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
}

// CurrentUserID resolves an access token to the owning user id.
func (s *UserService) CurrentUserID(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// Profile fetches the account behind an authenticated user id.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, common.ErrUnauthorized
	}
	return s.repo.Get(ctx, userID)
}
