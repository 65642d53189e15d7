package services

import (
	"context"
	"fmt"

	"github.com/verdant/planter/internal/geo"
	"github.com/verdant/planter/internal/geocode"
	"github.com/verdant/planter/internal/logging"
	"github.com/verdant/planter/internal/server/models"
)

// PlacesGeocoder extends Geocoder with the bounded nearby-places search.
type PlacesGeocoder interface {
	Geocoder
	NearbyPlaces(ctx context.Context, lat, lon float64, radiusMeters int) ([]string, error)
}

// Coordinates echoes a position back to the caller, with the GPS accuracy
// when the device reported one.
type Coordinates struct {
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AccuracyMeters *float64 `json:"accuracy_meters"`
}

// LocationDetail is the my-location payload: full address data, a shareable
// map link, and a 6-decimal display string.
type LocationDetail struct {
	Coordinates      Coordinates         `json:"coordinates"`
	Address          geocode.AddressInfo `json:"address"`
	Landmarks        []string            `json:"landmarks"`
	MapLink          string              `json:"map_link"`
	FormattedDisplay string              `json:"formatted_display"`
}

// NearbyPlacesResult lists named features around a position.
type NearbyPlacesResult struct {
	CurrentLocation    string   `json:"current_location"`
	NearbyPlaces       []string `json:"nearby_places"`
	Landmarks          []string `json:"landmarks"`
	SearchRadiusMeters int      `json:"search_radius_meters"`
	TotalFound         int      `json:"total_found"`
}

// ShareableLocation is a ready-to-send location share.
type ShareableLocation struct {
	ShareLink   string `json:"share_link"`
	ShareText   string `json:"share_text"`
	Address     string `json:"address,omitempty"`
	Coordinates string `json:"coordinates"`
}

// LocationService provides location tooling independent of plant records.
type LocationService struct {
	geocoder PlacesGeocoder
	logger   logging.Logger
}

func NewLocationService(geocoder PlacesGeocoder, logger logging.Logger) *LocationService {
	return &LocationService{geocoder: geocoder, logger: logger}
}

// MyLocation resolves a position into address detail. A failed geocode
// degrades to empty address data; the link and display are always present.
func (s *LocationService) MyLocation(ctx context.Context, lat, lon float64, accuracy *float64) (*LocationDetail, error) {
	if err := models.ValidateCoords(lat, lon); err != nil {
		return nil, err
	}

	info, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		s.logger.Warn(ctx, "reverse geocode failed", "lat", lat, "lon", lon, "err", err.Error())
		info = &geocode.AddressInfo{}
	}

	return &LocationDetail{
		Coordinates:      Coordinates{Latitude: lat, Longitude: lon, AccuracyMeters: accuracy},
		Address:          *info,
		Landmarks:        info.Landmarks,
		MapLink:          geocode.MapLink(lat, lon),
		FormattedDisplay: geo.FormatLatLon(lat, lon, 6),
	}, nil
}

// NearbyPlaces finds named features within radiusMeters of a position.
func (s *LocationService) NearbyPlaces(ctx context.Context, lat, lon float64, radiusMeters int) (*NearbyPlacesResult, error) {
	if err := models.ValidateCoords(lat, lon); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 {
		radiusMeters = 500
	}

	places, err := s.geocoder.NearbyPlaces(ctx, lat, lon, radiusMeters)
	if err != nil {
		s.logger.Warn(ctx, "nearby places lookup failed", "lat", lat, "lon", lon, "err", err.Error())
		places = nil
	}

	info, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		info = &geocode.AddressInfo{}
	}

	return &NearbyPlacesResult{
		CurrentLocation:    info.FullAddress,
		NearbyPlaces:       places,
		Landmarks:          info.Landmarks,
		SearchRadiusMeters: radiusMeters,
		TotalFound:         len(places),
	}, nil
}

// ShareLocation builds the share link and text for a position. The text
// prefers the resolved address and falls back to 6-decimal coordinates.
func (s *LocationService) ShareLocation(ctx context.Context, lat, lon float64, label string) (*ShareableLocation, error) {
	if err := models.ValidateCoords(lat, lon); err != nil {
		return nil, err
	}
	if label == "" {
		label = "Shared Location"
	}

	link := geocode.MapLink(lat, lon)
	coords := geo.FormatLatLon(lat, lon, 6)

	address := ""
	if info, err := s.geocoder.ReverseGeocode(ctx, lat, lon); err == nil {
		address = info.FullAddress
	}

	locationLine := address
	if locationLine == "" {
		locationLine = coords
	}

	return &ShareableLocation{
		ShareLink:   link,
		ShareText:   fmt.Sprintf("📍 %s\n🗺️ %s\n🔗 %s", label, locationLine, link),
		Address:     address,
		Coordinates: coords,
	}, nil
}
