package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var in credentialsPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid data")
	}

	user, err := s.users.Register(c.Context(), in.Email, in.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user_id": user.ID,
		"email":   user.Email,
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var in credentialsPayload
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid data")
	}

	token, err := s.users.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "token": token})
}

// handleMe returns the authenticated caller's account profile.
func (s *Server) handleMe(c *fiber.Ctx) error {
	user, err := s.users.Profile(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"user_id":    user.ID,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	})
}
