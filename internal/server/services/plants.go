package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdant/planter/internal/common"
	"github.com/verdant/planter/internal/geo"
	"github.com/verdant/planter/internal/geocode"
	"github.com/verdant/planter/internal/logging"
	"github.com/verdant/planter/internal/proximity"
	"github.com/verdant/planter/internal/server/models"
	"github.com/verdant/planter/internal/server/repositories/plants"
	"github.com/verdant/planter/internal/social"
)

// Geocoder is the reverse-geocoding collaborator the plant service needs.
// Both geocode.Client and geocode.CachedClient satisfy it.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*geocode.AddressInfo, error)
}

// CreatePlantInput carries the caller-supplied fields of a new plant.
// Address and Landmarks are optional; when absent they are filled by
// reverse geocoding at creation time, best effort.
type CreatePlantInput struct {
	Name      string
	Kind      string
	Lat       float64
	Lon       float64
	PhotoRef  string
	Address   string
	Landmarks []string
}

// DistanceReport pairs one plant with the distance from a user position and
// its proximity alert.
type DistanceReport struct {
	PlantID      string  `json:"plant_id"`
	PlantName    string  `json:"plant_name"`
	DistanceKm   float64 `json:"distance_km"`
	AlertMessage string  `json:"alert_message"`
	AlertLevel   string  `json:"alert_level"`
}

// PlantService owns the plant record lifecycle.
type PlantService struct {
	repo     plants.Repository
	geocoder Geocoder
	logger   logging.Logger
}

func NewPlantService(repo plants.Repository, geocoder Geocoder, logger logging.Logger) *PlantService {
	return &PlantService{repo: repo, geocoder: geocoder, logger: logger}
}

// Create validates input, composes the display name from the base name plus
// the kind emoji, enriches the location best effort, and persists the plant.
// The repository write happens before any social-post generation over the
// record; an unauthenticated call fails before any store access.
func (s *PlantService) Create(ctx context.Context, ownerID string, in CreatePlantInput) (*models.Plant, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthorized
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: plant name cannot be empty", common.ErrInvalidInput)
	}
	kind, err := models.ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateCoords(in.Lat, in.Lon); err != nil {
		return nil, err
	}

	address := in.Address
	landmarks := in.Landmarks
	if address == "" && s.geocoder != nil {
		info, err := s.geocoder.ReverseGeocode(ctx, in.Lat, in.Lon)
		if err != nil {
			// Enrichment never blocks creation.
			s.logger.Warn(ctx, "reverse geocode failed", "lat", in.Lat, "lon", in.Lon, "err", err.Error())
		} else {
			address = info.FullAddress
			landmarks = info.Landmarks
		}
	}

	plant := &models.Plant{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		DisplayName:   name + " " + kind.Emoji(),
		Lat:           in.Lat,
		Lon:           in.Lon,
		Kind:          kind,
		PhotoRef:      in.PhotoRef,
		Address:       address,
		Landmarks:     landmarks,
		IsUserPlanted: true,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, plant); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "plant created", "id", plant.ID, "owner", ownerID, "kind", string(kind))
	return plant, nil
}

func (s *PlantService) Get(ctx context.Context, id string) (*models.Plant, error) {
	return s.repo.Get(ctx, id)
}

func (s *PlantService) ListAll(ctx context.Context) ([]*models.Plant, error) {
	return s.repo.ListAll(ctx)
}

func (s *PlantService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Plant, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthorized
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete removes a user plant. Seeded plants and unknown ids report false.
// Only the owner may delete a plant they planted.
func (s *PlantService) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	if ownerID == "" {
		return false, common.ErrUnauthorized
	}

	plant, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !plant.IsUserPlanted {
		return false, nil
	}
	if plant.OwnerID != ownerID {
		return false, common.ErrUnauthorized
	}

	return s.repo.Delete(ctx, id)
}

// CheckLocation runs the 50-meter welcome check over every stored plant in
// store order. The first match wins, not the closest.
func (s *PlantService) CheckLocation(ctx context.Context, lat, lon float64) (proximity.Result, error) {
	if err := models.ValidateCoords(lat, lon); err != nil {
		return proximity.Result{}, err
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return proximity.Result{}, err
	}

	targets := make([]proximity.Target, 0, len(all))
	for _, p := range all {
		targets = append(targets, proximity.Target{Name: p.DisplayName, Lat: p.Lat, Lon: p.Lon})
	}
	return proximity.NearbyCheck(lat, lon, targets), nil
}

// Distances reports the distance from a user position to each of the owner's
// plants, ascending, with the proximity alert for each.
func (s *PlantService) Distances(ctx context.Context, ownerID string, lat, lon float64) ([]DistanceReport, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthorized
	}
	if err := models.ValidateCoords(lat, lon); err != nil {
		return nil, err
	}

	mine, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	reports := make([]DistanceReport, 0, len(mine))
	for _, p := range mine {
		km := geo.DistanceKm(lat, lon, p.Lat, p.Lon)
		alert := proximity.Classify(km)
		reports = append(reports, DistanceReport{
			PlantID:      p.ID,
			PlantName:    p.DisplayName,
			DistanceKm:   math.Round(km*100) / 100,
			AlertMessage: alert.Message,
			AlertLevel:   string(alert.Tier),
		})
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].DistanceKm < reports[j].DistanceKm })
	return reports, nil
}

// GeneratePosts fetches a plant and produces its social content. The plant
// is read back from the store, so posts always describe the persisted record.
func (s *PlantService) GeneratePosts(ctx context.Context, id string) (*models.Plant, *social.PostBundle, error) {
	plant, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	bundle, err := social.Generate(plant)
	if err != nil {
		return nil, nil, err
	}
	return plant, bundle, nil
}
