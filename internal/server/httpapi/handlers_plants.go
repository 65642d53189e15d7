package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/verdant/planter/internal/server/models"
	"github.com/verdant/planter/internal/server/services"
)

type coordsPayload struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type plantLocationPayload struct {
	Name      string   `json:"name"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Type      string   `json:"type"`
	PhotoRef  string   `json:"photo_ref"`
	Address   string   `json:"address"`
	Landmarks []string `json:"landmarks"`
}

// handleGetPlants lists every plant, seeded and user-planted, in map-pin form.
func (s *Server) handleGetPlants(c *fiber.Ctx) error {
	all, err := s.plants.ListAll(c.Context())
	if err != nil {
		return fail(c, err)
	}

	pins := make([]fiber.Map, 0, len(all))
	for _, p := range all {
		pins = append(pins, fiber.Map{
			"name":            p.DisplayName,
			"lat":             p.Lat,
			"lon":             p.Lon,
			"is_user_planted": p.IsUserPlanted,
		})
	}
	return c.JSON(fiber.Map{"plants": pins})
}

// handleGetUserPlants lists the caller's own plants with full detail.
func (s *Server) handleGetUserPlants(c *fiber.Ctx) error {
	mine, err := s.plants.ListByOwner(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	details := make([]fiber.Map, 0, len(mine))
	for _, p := range mine {
		details = append(details, fiber.Map{
			"id":        p.ID,
			"name":      p.DisplayName,
			"lat":       p.Lat,
			"lon":       p.Lon,
			"photo_url": p.PhotoRef,
			"address":   p.Address,
			"landmarks": p.Landmarks,
		})
	}
	return c.JSON(fiber.Map{"plants": details})
}

func (s *Server) handleGetPlantDetails(c *fiber.Ctx) error {
	plant, err := s.plants.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "plant": plant})
}

func (s *Server) handlePlantLocation(c *fiber.Ctx) error {
	var in plantLocationPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid data")
	}
	if in.Lat == nil || in.Lon == nil {
		return badRequest(c, "Invalid data")
	}

	plant, err := s.plants.Create(c.Context(), currentUserID(c), services.CreatePlantInput{
		Name:      in.Name,
		Kind:      in.Type,
		Lat:       *in.Lat,
		Lon:       *in.Lon,
		PhotoRef:  in.PhotoRef,
		Address:   in.Address,
		Landmarks: in.Landmarks,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   fmt.Sprintf("Successfully planted %s %q at this location!", plant.Kind, in.Name),
		"plant_id":  plant.ID,
		"address":   plant.Address,
		"landmarks": plant.Landmarks,
	})
}

func (s *Server) handleDeletePlant(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil || in.ID == "" {
		return badRequest(c, "Invalid data")
	}

	deleted, err := s.plants.Delete(c.Context(), currentUserID(c), in.ID)
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plant not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Plant deleted successfully"})
}

func (s *Server) handleCheckLocation(c *fiber.Ctx) error {
	var in coordsPayload
	if err := c.BodyParser(&in); err != nil || in.Lat == nil || in.Lon == nil {
		return badRequest(c, "Invalid data")
	}
	if err := models.ValidateCoords(*in.Lat, *in.Lon); err != nil {
		return badRequest(c, "Invalid coordinates")
	}

	result, err := s.plants.CheckLocation(c.Context(), *in.Lat, *in.Lon)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": result.Message, "nearby": result.IsNear})
}

func (s *Server) handleCalculateDistances(c *fiber.Ctx) error {
	var in coordsPayload
	if err := c.BodyParser(&in); err != nil || in.Lat == nil || in.Lon == nil {
		return badRequest(c, "Invalid data")
	}
	if err := models.ValidateCoords(*in.Lat, *in.Lon); err != nil {
		return badRequest(c, "Invalid coordinates")
	}

	reports, err := s.plants.Distances(c.Context(), currentUserID(c), *in.Lat, *in.Lon)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"distances": reports})
}

func (s *Server) handleGenerateSocialPost(c *fiber.Ctx) error {
	var in struct {
		PlantID string `json:"plant_id"`
	}
	if err := c.BodyParser(&in); err != nil || in.PlantID == "" {
		return badRequest(c, "Plant ID required")
	}

	plant, bundle, err := s.plants.GeneratePosts(c.Context(), in.PlantID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"posts":      bundle,
		"plant_name": plant.DisplayName,
		"photo_url":  plant.PhotoRef,
	})
}
