package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	botController "sekolahku_backend/internals/features/assignments/bot/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	botMiddleware "sekolahku_backend/internals/middlewares/bot"
)

// BotAPIRoutes — channel bot eksternal, diautentikasi shared secret
// (X-Bot-API-Key), bukan token per-user.
func BotAPIRoutes(router fiber.Router, db *gorm.DB) {
	ctl := botController.NewBotController(db)
	bot := router.Group("/bot", botMiddleware.BotAPIKeyMiddleware())

	bot.Get("/siswa-pending", ctl.AmbilSiswaPerluReminder)
	bot.Get("/siswa-pending/:idTugas", ctl.AmbilSiswaPendingByTugas)
	bot.Post("/reminder", ctl.CatatReminder)
	bot.Post("/webhook/status", ctl.WebhookStatus)
}

// BotGuruRoutes — endpoint reminder untuk guru (di belakang JWT).
func BotGuruRoutes(router fiber.Router, db *gorm.DB) {
	ctl := botController.NewBotController(db)

	router.Post("/tugas/:id/reminder",
		authMiddleware.OnlyRoles(constants.RoleErrorGuru("mengirim reminder"), constants.GuruOnly...),
		ctl.KirimReminder)
	router.Get("/tugas/:idTugas/reminder",
		authMiddleware.OnlyRoles(constants.RoleErrorGuru("melihat riwayat reminder"), constants.GuruOnly...),
		ctl.AmbilReminder)
}
