// Package models defines the persisted entities of the planter service.
// JSON tags follow the persisted plant shape: they are an interop contract
// for migrations between local and hosted storage, do not rename them.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/verdant/planter/internal/common"
)

// Kind classifies what was planted. It is the source of truth for the
// display emoji; the emoji is derived from it at creation, never the
// other way around.
type Kind string

const (
	KindTree   Kind = "tree"
	KindFlower Kind = "flower"
	KindPlant  Kind = "plant"
)

// ParseKind validates a user-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.TrimSpace(s)) {
	case KindTree:
		return KindTree, nil
	case KindFlower:
		return KindFlower, nil
	case KindPlant:
		return KindPlant, nil
	default:
		return "", fmt.Errorf("%w: invalid plant type %q", common.ErrInvalidInput, s)
	}
}

// Emoji returns the display suffix for the kind.
func (k Kind) Emoji() string {
	switch k {
	case KindTree:
		return "🌳"
	case KindFlower:
		return "🌸"
	default:
		return "🌱"
	}
}

// Plant is a planted memory at a location. ID, OwnerID and coordinates are
// immutable after creation; Address, Landmarks and PhotoRef may be backfilled
// later but never contradicted. Seeded plants (IsUserPlanted == false) are
// read-only and never targets of update or delete.
type Plant struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"user_id,omitempty"`
	DisplayName   string    `json:"name"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	Kind          Kind      `json:"kind,omitempty"`
	PhotoRef      string    `json:"photo_url,omitempty"`
	Address       string    `json:"address,omitempty"`
	Landmarks     []string  `json:"landmarks"`
	IsUserPlanted bool      `json:"is_user_planted"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// ValidateCoords checks the coordinate range invariants.
func ValidateCoords(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", common.ErrInvalidInput, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", common.ErrInvalidInput, lon)
	}
	return nil
}
