// Package httpapi is the JSON transport: a fiber application mapping routes
// onto the service layer. Handlers stay thin; validation and business rules
// live in the services.
package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/verdant/planter/internal/common"
	"github.com/verdant/planter/internal/logging"
	"github.com/verdant/planter/internal/server/services"
)

// Server bundles the services behind the HTTP surface.
type Server struct {
	users    *services.UserService
	plants   *services.PlantService
	location *services.LocationService
	photos   *services.PhotoService
	logger   logging.Logger
}

func NewServer(users *services.UserService, plants *services.PlantService,
	location *services.LocationService, photos *services.PhotoService,
	logger logging.Logger) *Server {
	return &Server{
		users:    users,
		plants:   plants,
		location: location,
		photos:   photos,
		logger:   logger,
	}
}

// Router builds the fiber application with all routes registered.
func (s *Server) Router() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/register", s.handleRegister)
	app.Post("/login", s.handleLogin)

	app.Get("/get_plants", s.handleGetPlants)
	app.Get("/get_plant_details/:id", s.handleGetPlantDetails)
	app.Post("/check_location", s.handleCheckLocation)
	app.Post("/my_location", s.handleMyLocation)
	app.Post("/nearby_places", s.handleNearbyPlaces)
	app.Post("/share_location", s.handleShareLocation)
	app.Post("/generate_social_post", s.handleGenerateSocialPost)
	app.Get("/photo_url/*", s.handlePhotoURL)

	app.Get("/me", s.requireAuth, s.handleMe)
	app.Get("/get_user_plants", s.requireAuth, s.handleGetUserPlants)
	app.Post("/plant_location", s.requireAuth, s.handlePlantLocation)
	app.Post("/delete_plant", s.requireAuth, s.handleDeletePlant)
	app.Post("/calculate_distances", s.requireAuth, s.handleCalculateDistances)
	app.Get("/photo_upload_url", s.requireAuth, s.handlePhotoUploadURL)

	return app
}

// fail maps a service error onto an HTTP status with the original
// error-body shape.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, common.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plant not found"})
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	case errors.Is(err, common.ErrLoginAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	case errors.Is(err, common.ErrEnrichmentUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Location service unavailable"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
