package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

// RegisterRequest — kelas & jurusan wajib untuk siswa, kosong untuk guru.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Telepon  string  `json:"telepon" validate:"required,min=8,max=20"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,oneof=guru siswa"`
	Kelas    *string `json:"kelas" validate:"required_if=Role siswa,omitempty,oneof=X XI XII"`
	Jurusan  *string `json:"jurusan" validate:"required_if=Role siswa,omitempty,oneof=MPLB RPL PM TKJ AKL"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type PenggunaResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Telepon   string    `json:"telepon"`
	Role      string    `json:"role"`
	Kelas     *string   `json:"kelas,omitempty"`
	Jurusan   *string   `json:"jurusan,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToPenggunaResponse(u userModel.UserModel) PenggunaResponse {
	return PenggunaResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Telepon:   u.Telepon,
		Role:      u.Role,
		Kelas:     u.Kelas,
		Jurusan:   u.Jurusan,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type AuthResponse struct {
	Token    string           `json:"token"`
	Pengguna PenggunaResponse `json:"pengguna"`
}
