package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 GET /api/auth/register-options
// Opsi kelas & jurusan untuk form registrasi siswa.
func (ac *AuthController) RegisterOptions(c *fiber.Ctx) error {
	return helper.Success(c, "Opsi registrasi berhasil diambil", fiber.Map{
		"kelas":   constants.KelasOptions,
		"jurusan": constants.JurusanOptions,
	})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

// 🟢 GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "Data pengguna berhasil diambil", authDTO.ToPenggunaResponse(user))
}
