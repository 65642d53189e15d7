package plants

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant/planter/internal/common"
	"github.com/verdant/planter/internal/server/models"
)

func userPlant(id, owner string) *models.Plant {
	return &models.Plant{
		ID:            id,
		OwnerID:       owner,
		DisplayName:   "Oak Tree 🌳",
		Lat:           40.7829,
		Lon:           -73.9654,
		Kind:          models.KindTree,
		Landmarks:     []string{"West Drive", "Manhattan"},
		IsUserPlanted: true,
		CreatedAt:     time.Now(),
	}
}

func TestMemory_SeededFirstInListAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(ctx, userPlant("p1", "u1")))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(Seeded())+1)
	for i, seeded := range Seeded() {
		assert.Equal(t, seeded.ID, all[i].ID)
	}
	assert.Equal(t, "p1", all[len(all)-1].ID)
}

func TestMemory_GetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	in := userPlant("p1", "u1")
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, in, got)

	// The stored record is a copy, not an alias.
	in.DisplayName = "mutated"
	again, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Oak Tree 🌳", again.DisplayName)
}

func TestMemory_LandmarksNotAliased(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	in := userPlant("p1", "u1")
	require.NoError(t, repo.Create(ctx, in))

	// Mutating the caller's slice after Create must not touch the store.
	in.Landmarks[0] = "mutated"
	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"West Drive", "Manhattan"}, got.Landmarks)

	// Mutating a returned slice must not touch the store either.
	got.Landmarks[1] = "mutated"
	again, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"West Drive", "Manhattan"}, again.Landmarks)
}

func TestMemory_GetMissing(t *testing.T) {
	repo := NewMemoryRepository()
	_, err := repo.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemory_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(ctx, userPlant("p1", "u1")))
	require.NoError(t, repo.Create(ctx, userPlant("p2", "u2")))
	require.NoError(t, repo.Create(ctx, userPlant("p3", "u1")))

	mine, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "p1", mine[0].ID)
	assert.Equal(t, "p3", mine[1].ID)
}

func TestMemory_DeleteUserPlant(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, userPlant("p1", "u1")))

	ok, err := repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.Get(ctx, "p1")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemory_DeleteSeededIsRefused(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	seededID := Seeded()[0].ID
	ok, err := repo.Delete(ctx, seededID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Still retrievable afterwards.
	got, err := repo.Get(ctx, seededID)
	require.NoError(t, err)
	assert.Equal(t, seededID, got.ID)
}

func TestMemory_DeleteMissing(t *testing.T) {
	repo := NewMemoryRepository()
	ok, err := repo.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}
