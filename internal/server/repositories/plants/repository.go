// Package plants provides storage backends for plant records behind a single
// Repository interface, so local (in-memory) and hosted (Postgres) stores are
// interchangeable.
package plants

import (
	"context"

	"github.com/verdant/planter/internal/server/models"
)

// Repository is the storage abstraction for plant records.
//
// ListAll returns seeded plants first, then stored plants in store order.
// Delete returns true iff a record existed and was removed; seeded plants
// are never removable and deleting one returns false without error.
type Repository interface {
	Create(ctx context.Context, plant *models.Plant) error
	Get(ctx context.Context, id string) (*models.Plant, error)
	ListAll(ctx context.Context) ([]*models.Plant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Plant, error)
	Delete(ctx context.Context, id string) (bool, error)
}
