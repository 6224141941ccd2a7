// internals/middlewares/bot/bot_key_middleware.go
package bot

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
)

// BotAPIKeyMiddleware mengautentikasi channel bot eksternal lewat shared secret
// di header X-Bot-API-Key. Channel ini tidak punya identitas user/role —
// hanya "bot terpercaya atau bukan".
func BotAPIKeyMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Get("X-Bot-API-Key")
		expectedKey := configs.BotAPIKey

		if apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    fiber.StatusUnauthorized,
				"status":  "error",
				"message": "API Key diperlukan",
			})
		}

		if expectedKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
			log.Println("[WARNING] X-Bot-API-Key tidak cocok")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    fiber.StatusForbidden,
				"status":  "error",
				"message": "API Key tidak valid",
			})
		}

		return c.Next()
	}
}
