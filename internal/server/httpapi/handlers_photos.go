package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

// handlePhotoUploadURL hands out a presigned upload URL. The returned key is
// what the client stores as the plant's photo reference.
func (s *Server) handlePhotoUploadURL(c *fiber.Ctx) error {
	key, url, err := s.photos.GetPresignedPutURL(c.Context())
	if err != nil {
		s.logger.Error(c.Context(), "presign upload failed", "err", err.Error())
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"photo_ref":  key,
		"upload_url": url,
	})
}

// handlePhotoURL resolves a stored photo key into a presigned download URL.
// The key is the path remainder, so the date partitions stay intact.
func (s *Server) handlePhotoURL(c *fiber.Ctx) error {
	key := c.Params("*")
	if key == "" {
		return badRequest(c, "Photo key required")
	}

	url, err := s.photos.GetPresignedGetURL(c.Context(), key)
	if err != nil {
		s.logger.Error(c.Context(), "presign download failed", "key", key, "err", err.Error())
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "photo_url": url})
}
