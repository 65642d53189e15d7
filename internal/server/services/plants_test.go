package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant/planter/internal/common"
	"github.com/verdant/planter/internal/geocode"
	"github.com/verdant/planter/internal/logging"
	"github.com/verdant/planter/internal/server/models"
	"github.com/verdant/planter/internal/server/repositories/plants"
)

// --- helpers ---

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeGeocoder struct {
	info  *geocode.AddressInfo
	err   error
	calls int
}

func (f *fakeGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*geocode.AddressInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

type fakePlantsRepo struct {
	created   []*models.Plant
	createErr error
}

func (f *fakePlantsRepo) Create(ctx context.Context, p *models.Plant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakePlantsRepo) Get(ctx context.Context, id string) (*models.Plant, error) {
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakePlantsRepo) ListAll(ctx context.Context) ([]*models.Plant, error) {
	return f.created, nil
}

func (f *fakePlantsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Plant, error) {
	var out []*models.Plant
	for _, p := range f.created {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlantsRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i, p := range f.created {
		if p.ID == id && p.IsUserPlanted {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newPlantService(repo plants.Repository, g Geocoder) *PlantService {
	return NewPlantService(repo, g, testLogger())
}

// --- tests ---

func TestCreate_Unauthorized_NoStoreWrite(t *testing.T) {
	repo := &fakePlantsRepo{}
	geocoder := &fakeGeocoder{}
	svc := newPlantService(repo, geocoder)

	_, err := svc.Create(context.Background(), "", CreatePlantInput{Name: "Oak", Kind: "tree", Lat: 1, Lon: 2})
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
	assert.Empty(t, repo.created)
	assert.Zero(t, geocoder.calls)
}

func TestCreate_ComposesDisplayName(t *testing.T) {
	repo := &fakePlantsRepo{}
	svc := newPlantService(repo, &fakeGeocoder{info: &geocode.AddressInfo{}})

	p, err := svc.Create(context.Background(), "u1", CreatePlantInput{Name: "Oak Tree", Kind: "tree", Lat: 40.7829, Lon: -73.9654})
	require.NoError(t, err)
	assert.Equal(t, "Oak Tree 🌳", p.DisplayName)
	assert.Equal(t, models.KindTree, p.Kind)
	assert.True(t, p.IsUserPlanted)
	assert.Equal(t, "u1", p.OwnerID)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	flower, err := svc.Create(context.Background(), "u1", CreatePlantInput{Name: "Rose", Kind: "flower", Lat: 1, Lon: 2})
	require.NoError(t, err)
	assert.Equal(t, "Rose 🌸", flower.DisplayName)

	generic, err := svc.Create(context.Background(), "u1", CreatePlantInput{Name: "Fern", Kind: "plant", Lat: 1, Lon: 2})
	require.NoError(t, err)
	assert.Equal(t, "Fern 🌱", generic.DisplayName)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := newPlantService(&fakePlantsRepo{}, &fakeGeocoder{})

	cases := []CreatePlantInput{
		{Name: "  ", Kind: "tree", Lat: 1, Lon: 2},
		{Name: "Oak", Kind: "cactus", Lat: 1, Lon: 2},
		{Name: "Oak", Kind: "tree", Lat: 91, Lon: 2},
		{Name: "Oak", Kind: "tree", Lat: 1, Lon: -181},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), "u1", in)
		assert.True(t, errors.Is(err, common.ErrInvalidInput), "input %+v", in)
	}
}

func TestCreate_EnrichmentFillsAddress(t *testing.T) {
	repo := &fakePlantsRepo{}
	geocoder := &fakeGeocoder{info: &geocode.AddressInfo{
		FullAddress: "Central Park, NYC",
		Landmarks:   []string{"West Drive", "Manhattan"},
	}}
	svc := newPlantService(repo, geocoder)

	p, err := svc.Create(context.Background(), "u1", CreatePlantInput{Name: "Oak", Kind: "tree", Lat: 40.7829, Lon: -73.9654})
	require.NoError(t, err)
	assert.Equal(t, "Central Park, NYC", p.Address)
	assert.Equal(t, []string{"West Drive", "Manhattan"}, p.Landmarks)
	assert.Equal(t, 1, geocoder.calls)
}

func TestCreate_EnrichmentFailureDoesNotBlock(t *testing.T) {
	repo := &fakePlantsRepo{}
	geocoder := &fakeGeocoder{err: common.ErrEnrichmentUnavailable}
	svc := newPlantService(repo, geocoder)

	p, err := svc.Create(context.Background(), "u1", CreatePlantInput{Name: "Oak", Kind: "tree", Lat: 1, Lon: 2})
	require.NoError(t, err)
	assert.Empty(t, p.Address)
	assert.Empty(t, p.Landmarks)
	require.Len(t, repo.created, 1)
}

func TestCreate_SuppliedAddressSkipsEnrichment(t *testing.T) {
	geocoder := &fakeGeocoder{info: &geocode.AddressInfo{FullAddress: "ignored"}}
	svc := newPlantService(&fakePlantsRepo{}, geocoder)

	p, err := svc.Create(context.Background(), "u1", CreatePlantInput{
		Name: "Oak", Kind: "tree", Lat: 1, Lon: 2,
		Address: "My Garden", Landmarks: []string{"Back Fence"},
	})
	require.NoError(t, err)
	assert.Equal(t, "My Garden", p.Address)
	assert.Zero(t, geocoder.calls)
}

func TestCreate_RoundTripThroughGet(t *testing.T) {
	repo := &fakePlantsRepo{}
	svc := newPlantService(repo, &fakeGeocoder{info: &geocode.AddressInfo{}})

	created, err := svc.Create(context.Background(), "u1", CreatePlantInput{Name: "Oak Tree", Kind: "tree", Lat: 40.7829, Lon: -73.9654})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDelete_Semantics(t *testing.T) {
	repo := &fakePlantsRepo{}
	svc := newPlantService(repo, &fakeGeocoder{info: &geocode.AddressInfo{}})
	ctx := context.Background()

	p, err := svc.Create(ctx, "u1", CreatePlantInput{Name: "Oak", Kind: "tree", Lat: 1, Lon: 2})
	require.NoError(t, err)

	// Someone else's plant is not deletable.
	_, err = svc.Delete(ctx, "u2", p.ID)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))

	// Unknown id reports false without error.
	ok, err := svc.Delete(ctx, "u1", "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Delete(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete_SeededReportsFalse(t *testing.T) {
	svc := newPlantService(plants.NewMemoryRepository(), &fakeGeocoder{info: &geocode.AddressInfo{}})

	ok, err := svc.Delete(context.Background(), "u1", "seed-oak-central-park")
	require.NoError(t, err)
	assert.False(t, ok)

	// Still retrievable.
	_, err = svc.Get(context.Background(), "seed-oak-central-park")
	assert.NoError(t, err)
}

func TestCheckLocation_FirstMatchInStoreOrder(t *testing.T) {
	repo := plants.NewMemoryRepository()
	svc := newPlantService(repo, &fakeGeocoder{info: &geocode.AddressInfo{}})

	// Standing on the seeded Central Park oak.
	r, err := svc.CheckLocation(context.Background(), 40.7829, -73.9654)
	require.NoError(t, err)
	assert.True(t, r.IsNear)
	assert.Contains(t, r.Message, "Oak Tree - Central Park Lawn, NYC")
}

func TestCheckLocation_NoPlantsNearby(t *testing.T) {
	svc := newPlantService(plants.NewMemoryRepository(), &fakeGeocoder{info: &geocode.AddressInfo{}})

	r, err := svc.CheckLocation(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.False(t, r.IsNear)
	assert.Equal(t, "No plants nearby.", r.Message)
}

func TestDistances_SortedAscending(t *testing.T) {
	repo := &fakePlantsRepo{}
	svc := newPlantService(repo, &fakeGeocoder{info: &geocode.AddressInfo{}})
	ctx := context.Background()

	// Far plant created first, near plant second.
	_, err := svc.Create(ctx, "u1", CreatePlantInput{Name: "Far", Kind: "tree", Lat: 51.5027, Lon: -0.1527})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", CreatePlantInput{Name: "Near", Kind: "flower", Lat: 40.7536, Lon: -73.9832})
	require.NoError(t, err)

	reports, err := svc.Distances(ctx, "u1", 40.7829, -73.9654)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Near 🌸", reports[0].PlantName)
	assert.Equal(t, "Far 🌳", reports[1].PlantName)
	assert.Less(t, reports[0].DistanceKm, reports[1].DistanceKm)
	assert.Equal(t, "nearby", reports[0].AlertLevel)
	assert.Equal(t, "far", reports[1].AlertLevel)
}

func TestGeneratePosts_ReadsPersistedRecord(t *testing.T) {
	repo := &fakePlantsRepo{}
	svc := newPlantService(repo, &fakeGeocoder{info: &geocode.AddressInfo{FullAddress: "Bryant Park, NYC"}})

	created, err := svc.Create(context.Background(), "u1", CreatePlantInput{Name: "Maple", Kind: "tree", Lat: 40.7536, Lon: -73.9832})
	require.NoError(t, err)

	plant, bundle, err := svc.GeneratePosts(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, plant.ID)
	assert.Equal(t, "Maple", bundle.PlantInfo.Name)
	assert.Equal(t, "tree", bundle.PlantInfo.Kind)
	assert.Contains(t, bundle.Templates["twitter"], "Just planted a tree!")
}

func TestGeneratePosts_NotFound(t *testing.T) {
	svc := newPlantService(&fakePlantsRepo{}, &fakeGeocoder{})
	_, _, err := svc.GeneratePosts(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
