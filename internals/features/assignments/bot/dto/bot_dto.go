package dto

import (
	"time"

	"github.com/google/uuid"

	botModel "sekolahku_backend/internals/features/assignments/bot/model"
	tugasDTO "sekolahku_backend/internals/features/assignments/tugas/dto"
	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
)

/* =========================================================
   REQUESTS (channel bot)
   ========================================================= */

// CatatReminderRequest — dipanggil bot SETELAH berhasil kirim reminder.
// dikirim_pada opsional; default waktu server saat dicatat.
type CatatReminderRequest struct {
	PenugasanID uuid.UUID  `json:"penugasan_id" validate:"required"`
	DikirimPada *time.Time `json:"dikirim_pada"`
}

// WebhookStatusRequest — update status pengiriman untuk reminder yang
// sudah tercatat. Tidak pernah menyentuh status penugasan.
type WebhookStatusRequest struct {
	ReminderID uuid.UUID `json:"reminder_id" validate:"required"`
	Status     string    `json:"status" validate:"required,oneof=terkirim gagal"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type BotReminderResponse struct {
	BotReminderID uuid.UUID `json:"bot_reminder_id"`
	PenugasanID   uuid.UUID `json:"penugasan_id"`
	Status        string    `json:"status"`
	DikirimPada   time.Time `json:"dikirim_pada"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToBotReminderResponse(m botModel.BotReminderModel) BotReminderResponse {
	return BotReminderResponse{
		BotReminderID: m.BotReminderID,
		PenugasanID:   m.BotReminderPenugasanID,
		Status:        m.BotReminderStatus,
		DikirimPada:   m.BotReminderDikirimPada,
		CreatedAt:     m.CreatedAt,
	}
}

// SiswaPendingResponse — bentuk ringkas yang dioptimalkan untuk bot:
// cukup info kontak siswa + judul tugas untuk menyusun pesan reminder.
type SiswaPendingResponse struct {
	PenugasanID uuid.UUID                     `json:"penugasan_id"`
	TugasID     uuid.UUID                     `json:"tugas_id"`
	TugasJudul  string                        `json:"tugas_judul"`
	Siswa       tugasDTO.SiswaRingkasResponse `json:"siswa"`
	CreatedAt   time.Time                     `json:"created_at"`
}

func ToSiswaPendingResponse(p tugasModel.PenugasanModel) SiswaPendingResponse {
	resp := SiswaPendingResponse{
		PenugasanID: p.PenugasanID,
		TugasID:     p.PenugasanTugasID,
		CreatedAt:   p.CreatedAt,
	}
	if p.Tugas != nil {
		resp.TugasJudul = p.Tugas.TugasJudul
	}
	if p.Siswa != nil {
		resp.Siswa = tugasDTO.ToSiswaRingkasResponse(*p.Siswa)
	}
	return resp
}
