package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	botRoute "sekolahku_backend/internals/features/assignments/bot/route"
	tugasRoute "sekolahku_backend/internals/features/assignments/tugas/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== BOT (API key, tanpa JWT) =====================
	log.Println("[INFO] Setting up BOT group (API key)...")
	botGroup := app.Group("/api")
	botRoute.BotAPIRoutes(botGroup, db)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up PRIVATE group (JWT)...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting Tugas routes...")
	tugasRoute.TugasRoutes(private, db)

	log.Println("[INFO] Mounting Bot guru routes...")
	botRoute.BotGuruRoutes(private, db)
}
