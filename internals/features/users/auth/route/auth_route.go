package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ac := controller.NewAuthController(db)

	public := app.Group("/api/auth")
	public.Get("/register-options", ac.RegisterOptions)
	public.Post("/register", middlewares.RegisterRateLimiter(), ac.Register)
	public.Post("/login", middlewares.LoginRateLimiter(), ac.Login)

	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ac.Logout)
	protected.Get("/me", ac.Me)
}
