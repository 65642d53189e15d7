package geocode

import "fmt"

// MapLink builds the shareable Google Maps URL for a coordinate at the fixed
// zoom level 15. The exact string shape is a compatibility contract for
// anything parsing shared links; do not reorder the parameters.
func MapLink(lat, lon float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v&ll=%v,%v&z=15", lat, lon, lat, lon)
}
