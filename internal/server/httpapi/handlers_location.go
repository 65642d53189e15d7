package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleMyLocation(c *fiber.Ctx) error {
	var in struct {
		Lat      *float64 `json:"lat"`
		Lon      *float64 `json:"lon"`
		Accuracy *float64 `json:"accuracy"`
	}
	if err := c.BodyParser(&in); err != nil || in.Lat == nil || in.Lon == nil {
		return badRequest(c, "Location coordinates required")
	}

	detail, err := s.location.MyLocation(c.Context(), *in.Lat, *in.Lon, in.Accuracy)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"coordinates":       detail.Coordinates,
		"address":           detail.Address,
		"landmarks":         detail.Landmarks,
		"map_link":          detail.MapLink,
		"formatted_display": detail.FormattedDisplay,
	})
}

func (s *Server) handleNearbyPlaces(c *fiber.Ctx) error {
	var in struct {
		Lat    *float64 `json:"lat"`
		Lon    *float64 `json:"lon"`
		Radius int      `json:"radius"`
	}
	if err := c.BodyParser(&in); err != nil || in.Lat == nil || in.Lon == nil {
		return badRequest(c, "Location coordinates required")
	}

	result, err := s.location.NearbyPlaces(c.Context(), *in.Lat, *in.Lon, in.Radius)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"current_location":     result.CurrentLocation,
		"nearby_places":        result.NearbyPlaces,
		"landmarks":            result.Landmarks,
		"search_radius_meters": result.SearchRadiusMeters,
		"total_found":          result.TotalFound,
	})
}

func (s *Server) handleShareLocation(c *fiber.Ctx) error {
	var in struct {
		Lat   *float64 `json:"lat"`
		Lon   *float64 `json:"lon"`
		Label string   `json:"label"`
	}
	if err := c.BodyParser(&in); err != nil || in.Lat == nil || in.Lon == nil {
		return badRequest(c, "Location coordinates required")
	}

	share, err := s.location.ShareLocation(c.Context(), *in.Lat, *in.Lon, in.Label)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"share_link":  share.ShareLink,
		"share_text":  share.ShareText,
		"address":     share.Address,
		"coordinates": share.Coordinates,
	})
}
