package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// requireAuth verifies the bearer token and stashes the user id in locals.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := s.users.CurrentUserID(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	c.Locals("user_id", userID)
	return c.Next()
}

func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
