package dto

import (
	"time"

	"github.com/google/uuid"

	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

// AjukanPenugasanRequest — link_drive hanya wajib untuk tugas bertipe link;
// untuk tipe langsung payload diabaikan.
type AjukanPenugasanRequest struct {
	LinkDrive *string `json:"link_drive" validate:"omitempty,max=2048"`
}

// UpdateStatusPenugasanRequest — finalisasi oleh guru. Nilai & catatan
// opsional dan independen; nilai harus 0–100 bila ada.
type UpdateStatusPenugasanRequest struct {
	Status      string  `json:"status" validate:"required,oneof=selesai ditolak"`
	Nilai       *int    `json:"nilai" validate:"omitempty,min=0,max=100"`
	CatatanGuru *string `json:"catatan_guru" validate:"omitempty,max=1000"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type SiswaRingkasResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Telepon  string    `json:"telepon"`
	Kelas    *string   `json:"kelas,omitempty"`
	Jurusan  *string   `json:"jurusan,omitempty"`
}

func ToSiswaRingkasResponse(u userModel.UserModel) SiswaRingkasResponse {
	return SiswaRingkasResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Telepon:  u.Telepon,
		Kelas:    u.Kelas,
		Jurusan:  u.Jurusan,
	}
}

// Hasil submit siswa
type PenugasanResponse struct {
	PenugasanID        uuid.UUID  `json:"penugasan_id"`
	PenugasanTugasID   uuid.UUID  `json:"penugasan_tugas_id"`
	PenugasanSiswaID   uuid.UUID  `json:"penugasan_siswa_id"`
	Status             string     `json:"status"`
	LinkDrive          *string    `json:"link_drive,omitempty"`
	TanggalPengumpulan *time.Time `json:"tanggal_pengumpulan,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToPenugasanResponse(p tugasModel.PenugasanModel) PenugasanResponse {
	return PenugasanResponse{
		PenugasanID:        p.PenugasanID,
		PenugasanTugasID:   p.PenugasanTugasID,
		PenugasanSiswaID:   p.PenugasanSiswaID,
		Status:             p.PenugasanStatus,
		LinkDrive:          p.PenugasanLinkDrive,
		TanggalPengumpulan: p.PenugasanTanggalPengumpulan,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// Hasil finalisasi guru
type PenugasanFinalResponse struct {
	PenugasanID uuid.UUID `json:"penugasan_id"`
	Status      string    `json:"status"`
	Nilai       *int      `json:"nilai,omitempty"`
	CatatanGuru *string   `json:"catatan_guru,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToPenugasanFinalResponse(p tugasModel.PenugasanModel) PenugasanFinalResponse {
	return PenugasanFinalResponse{
		PenugasanID: p.PenugasanID,
		Status:      p.PenugasanStatus,
		Nilai:       p.PenugasanNilai,
		CatatanGuru: p.PenugasanCatatanGuru,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Item pending (guru & bot)
type PenugasanPendingResponse struct {
	PenugasanID uuid.UUID            `json:"penugasan_id"`
	Siswa       SiswaRingkasResponse `json:"siswa"`
	Status      string               `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

func ToPenugasanPendingResponse(p tugasModel.PenugasanModel) PenugasanPendingResponse {
	resp := PenugasanPendingResponse{
		PenugasanID: p.PenugasanID,
		Status:      p.PenugasanStatus,
		CreatedAt:   p.CreatedAt,
	}
	if p.Siswa != nil {
		resp.Siswa = ToSiswaRingkasResponse(*p.Siswa)
	}
	return resp
}
