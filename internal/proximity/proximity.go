// Package proximity classifies distances to planted locations into discrete
// alert tiers and runs the 50-meter welcome check. Pure functions over their
// inputs; no hidden state.
package proximity

import (
	"fmt"

	"github.com/verdant/planter/internal/geo"
)

// Tier is a discrete "how close" bucket.
type Tier string

const (
	TierArrived     Tier = "arrived"
	TierVeryClose   Tier = "very_close"
	TierNearby      Tier = "nearby"
	TierApproaching Tier = "approaching"
	TierCloser      Tier = "closer"
	TierSameRegion  Tier = "same_region"
	TierFar         Tier = "far"
)

// WelcomeRadiusMeters is the arrival radius for the nearby check.
const WelcomeRadiusMeters = 50.0

// Result describes how close a position is to a target.
type Result struct {
	IsNear         bool    `json:"nearby"`
	DistanceMeters float64 `json:"distance_meters"`
	Tier           Tier    `json:"tier"`
	Message        string  `json:"message"`
}

// Target is the minimal view of a plant the checks need.
type Target struct {
	Name string
	Lat  float64
	Lon  float64
}

// Classify maps a distance in kilometers onto a tier and its alert message.
// Breakpoints are fixed: 0.05, 1, 5, 10, 15, 20 km.
func Classify(distanceKm float64) Result {
	r := Result{DistanceMeters: distanceKm * 1000}
	switch {
	case distanceKm < 0.05:
		r.Tier = TierArrived
		r.Message = "You've arrived at your plant! 🎉"
		r.IsNear = true
	case distanceKm < 1:
		r.Tier = TierVeryClose
		r.Message = "Your plant is very close! Less than 1 km away! 🌱"
	case distanceKm < 5:
		r.Tier = TierNearby
		r.Message = "Your plant is nearby - within 5 km! 🌿"
	case distanceKm < 10:
		r.Tier = TierApproaching
		r.Message = "You're approaching your plant - within 10 km."
	case distanceKm < 15:
		r.Tier = TierCloser
		r.Message = "Getting closer to your plant - within 15 km."
	case distanceKm < 20:
		r.Tier = TierSameRegion
		r.Message = "You're in the same region as your plant - within 20 km."
	default:
		r.Tier = TierFar
		r.Message = fmt.Sprintf("Your plant is %.1f km away.", distanceKm)
	}
	return r
}

// NearbyCheck walks targets in the order given and returns a near result for
// the FIRST one within WelcomeRadiusMeters. The first match wins, not the
// closest: callers control iteration order and the answer depends on it.
// With no match it returns a far result with a fixed message.
func NearbyCheck(userLat, userLon float64, targets []Target) Result {
	for _, t := range targets {
		d := geo.DistanceMeters(t.Lat, t.Lon, userLat, userLon)
		if d <= WelcomeRadiusMeters {
			return Result{
				IsNear:         true,
				DistanceMeters: d,
				Tier:           TierArrived,
				Message:        fmt.Sprintf("Welcome to %s! You are within %.2f meters.", t.Name, d),
			}
		}
	}
	return Result{
		IsNear:  false,
		Tier:    TierFar,
		Message: "No plants nearby.",
	}
}
