// Package social generates shareable, platform-specific post text for a
// plant record. Generation is a pure, deterministic function of the plant
// value: the same plant always yields byte-identical output.
package social

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verdant/planter/internal/geo"
	"github.com/verdant/planter/internal/geocode"
	"github.com/verdant/planter/internal/server/models"
)

// PlantInfo summarizes the plant fields the templates were built from.
type PlantInfo struct {
	Name        string   `json:"name"`
	Kind        string   `json:"type"`
	Emoji       string   `json:"emoji"`
	Address     string   `json:"address"`
	Landmarks   []string `json:"landmarks"`
	Coordinates string   `json:"coordinates"`
}

// PostBundle is the full set of generated content for one plant.
type PostBundle struct {
	Templates map[string]string `json:"templates"`
	MapLink   string            `json:"map_link"`
	PlantInfo PlantInfo         `json:"plant_info"`
}

// Display names may carry an emoji suffix from older records where the name
// was the only source of truth for the kind, so kind is re-derived from the
// name here rather than read from the entity.
func kindFromDisplayName(name string) (kind, emoji string) {
	switch {
	case strings.Contains(name, "🌳"):
		return "tree", "🌳"
	case strings.Contains(name, "🌸"):
		return "flower", "🌸"
	default:
		return "plant", "🌱"
	}
}

func cleanName(name string) string {
	for _, e := range []string{"🌳", "🌸", "🌱"} {
		name = strings.ReplaceAll(name, e, "")
	}
	return strings.TrimSpace(name)
}

// Generate builds the map link, per-platform templates, and the plant info
// summary for one plant. Missing address or landmarks degrade gracefully;
// only a nil plant is an error.
func Generate(plant *models.Plant) (*PostBundle, error) {
	if plant == nil {
		return nil, errors.New("social: nil plant")
	}

	mapLink := geocode.MapLink(plant.Lat, plant.Lon)
	kind, emoji := kindFromDisplayName(plant.DisplayName)
	name := cleanName(plant.DisplayName)
	coords := geo.FormatLatLon(plant.Lat, plant.Lon, 4)

	location := plant.Address
	if location == "" {
		location = coords
	}

	landmarksText := ""
	if len(plant.Landmarks) > 0 {
		shown := plant.Landmarks
		if len(shown) > 2 {
			shown = shown[:2]
		}
		landmarksText = "Near: " + strings.Join(shown, ", ")
	}

	detailedLandmarks := ""
	if landmarksText != "" {
		detailedLandmarks = "🏞️ " + landmarksText
	}

	templates := map[string]string{
		"short": fmt.Sprintf("Just planted a new %s today! 🌿%s\nOne small step for a greener tomorrow. 🌍✨\n\n📍 %s\n🗺️ %s",
			kind, emoji, name, mapLink),
		"inspirational": fmt.Sprintf("Today I planted a %s — a tiny act of kindness for our planet.\nLet's grow more green together! 🌱💚\n\n📍 %s\n🗺️ %s\n🔗 %s\n\n#PlantMore #GoGreen #DigitalPlanter",
			kind, name, location, mapLink),
		"social": fmt.Sprintf("New plant baby added to my garden! %s🌱\nEvery plant is a promise for a better future.\n\n📍 %s\n🗺️ %s\n%s\n🔗 %s\n\n#NatureLove #PlantationDrive #GreenLife #EcoWarrior",
			emoji, name, location, landmarksText, mapLink),
		"instagram": fmt.Sprintf("Planted something beautiful today.\nHoping it grows strong and bright—just like dreams. ✨🌱\n\n%s %s\n📍 %s\n%s\n\nView on map: %s\n\n#GardenVibes #PlantingDay #NatureMagic #GreenThumb #EcoFriendly",
			emoji, name, location, landmarksText, mapLink),
		"detailed": fmt.Sprintf("🌱 I planted a %s today!\n\n📍 %s\n🗺️ %s\n📌 Coordinates: %s\n%s\n\nView on map: %s\n\n#DigitalPlanter #PlantATree #GreenEarth #SaveThePlanet #ClimateAction",
			kind, name, location, coords, detailedLandmarks, mapLink),
		"whatsapp": fmt.Sprintf("Planted a new %s today %s\nLet's make the Earth greener, one plant at a time!\n\n📍 %s\n%s",
			kind, emoji, name, mapLink),
		"youtube": fmt.Sprintf("Planting a new %s today! 🌱\nJoin me in making the world greener.\n\n📍 %s\n🗺️ %s\n%s\n\nLike, share, and comment what plant I should grow next! 🌿✨\n#shorts #planting #green #ecofriendly #nature",
			kind, name, location, mapLink),
		"professional": fmt.Sprintf("I planted a new %s today as part of my commitment to environmental care.\nSmall actions create big impacts. 🌱🌍\n\n📍 Location: %s\n🗺️ %s\n🔗 %s\n\n#Sustainability #EcoFriendly #CorporateResponsibility #GreenInitiative",
			kind, name, location, mapLink),
		"twitter": fmt.Sprintf("🌱 Just planted a %s!\n\n📍 %s\n🗺️ %s\n\n#PlantATree #GoGreen",
			kind, name, mapLink),
	}

	return &PostBundle{
		Templates: templates,
		MapLink:   mapLink,
		PlantInfo: PlantInfo{
			Name:        name,
			Kind:        kind,
			Emoji:       emoji,
			Address:     location,
			Landmarks:   plant.Landmarks,
			Coordinates: coords,
		},
	}, nil
}
