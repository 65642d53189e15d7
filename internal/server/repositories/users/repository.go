// Package users provides storage for identity-provider accounts.
package users

import (
	"context"

	"github.com/verdant/planter/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}
