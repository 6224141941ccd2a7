package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "sekolahku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu CORS, logger, dan rate limiter umum.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
