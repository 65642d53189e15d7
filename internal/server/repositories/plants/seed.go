package plants

import "github.com/verdant/planter/internal/server/models"

// Seeded returns the demo plants every store starts with: open public
// spaces, not owned by anyone, read-only. IDs are fixed so local and hosted
// stores agree on them.
func Seeded() []*models.Plant {
	return []*models.Plant{
		{ID: "seed-oak-central-park", DisplayName: "Oak Tree - Central Park Lawn, NYC", Lat: 40.7829, Lon: -73.9654},
		{ID: "seed-rose-embarcadero", DisplayName: "Rose Bush - Embarcadero Waterfront, SF", Lat: 37.7955, Lon: -122.3937},
		{ID: "seed-lavender-tuileries", DisplayName: "Lavender - Tuileries Garden Path, Paris", Lat: 48.8634, Lon: 2.3275},
		{ID: "seed-jasmine-rajpath", DisplayName: "Jasmine - Rajpath Road, New Delhi", Lat: 28.6143, Lon: 77.2088},
		{ID: "seed-maple-bryant-park", DisplayName: "Maple Tree - Bryant Park Lawn, NYC", Lat: 40.7536, Lon: -73.9832},
		{ID: "seed-sunflower-hyde-park", DisplayName: "Sunflower - Hyde Park Corner, London", Lat: 51.5027, Lon: -0.1527},
		{ID: "seed-petunia-marina-beach", DisplayName: "Petunia - Marina Beach Road, Chennai", Lat: 13.0499, Lon: 80.2824},
		{ID: "seed-bamboo-lodhi-garden", DisplayName: "Bamboo - Lodhi Garden Path, Delhi", Lat: 28.5933, Lon: 77.2197},
	}
}
