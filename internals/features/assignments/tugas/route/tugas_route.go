package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	tugasController "sekolahku_backend/internals/features/assignments/tugas/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// TugasRoutes — semua endpoint tugas & penugasan (di belakang JWT).
func TugasRoutes(router fiber.Router, db *gorm.DB) {
	ctl := tugasController.NewTugasController(db)
	tugas := router.Group("/tugas")

	// Guru only
	tugas.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorGuru("membuat tugas"), constants.GuruOnly...),
		ctl.BuatTugas)
	tugas.Get("/:id/detail",
		authMiddleware.OnlyRoles(constants.RoleErrorGuru("melihat detail tugas"), constants.GuruOnly...),
		ctl.AmbilDetailTugas)
	tugas.Get("/:id/pending",
		authMiddleware.OnlyRoles(constants.RoleErrorGuru("melihat penugasan pending"), constants.GuruOnly...),
		ctl.AmbilPenugasanPending)
	tugas.Put("/penugasan/:id/status",
		authMiddleware.OnlyRoles(constants.RoleErrorGuru("mengubah status penugasan"), constants.GuruOnly...),
		ctl.UpdateStatusPenugasan)

	// Siswa only
	tugas.Post("/:id/submit",
		authMiddleware.OnlyRoles(constants.RoleErrorSiswa("mengajukan penugasan"), constants.SiswaOnly...),
		ctl.AjukanPenugasan)

	// Guru & siswa (bentuk respons tergantung role)
	tugas.Get("/", ctl.AmbilTugas)
}
