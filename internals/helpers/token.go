package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromLocals membaca user_id (string UUID) yang disimpan AuthMiddleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user ID tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user ID tidak valid")
	}
	return id, nil
}

// GetRoleFromLocals membaca role yang disimpan AuthMiddleware.
func GetRoleFromLocals(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role tidak ditemukan di token")
	}
	return role, nil
}
