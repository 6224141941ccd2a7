package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	botDTO "sekolahku_backend/internals/features/assignments/bot/dto"
	botModel "sekolahku_backend/internals/features/assignments/bot/model"
	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
	tugasRepo "sekolahku_backend/internals/features/assignments/tugas/repository"
	helper "sekolahku_backend/internals/helpers"
)

type BotController struct {
	DB        *gorm.DB
	TugasRepo *tugasRepo.TugasRepository
}

func NewBotController(db *gorm.DB) *BotController {
	return &BotController{DB: db, TugasRepo: tugasRepo.NewTugasRepository(db)}
}

/* =========================================================
   Channel bot (shared secret, tanpa identitas user)
   ========================================================= */

// 🟢 GET /api/bot/siswa-pending
// Semua penugasan pending lintas tugas — bahan bot menentukan siapa yang
// perlu di-nudge.
func (ctl *BotController) AmbilSiswaPerluReminder(c *fiber.Ctx) error {
	var pending []tugasModel.PenugasanModel
	if err := ctl.DB.
		Where("penugasan_status = ?", tugasModel.StatusPending).
		Preload("Siswa").
		Preload("Tugas").
		Order("created_at ASC").
		Find(&pending).Error; err != nil {
		log.Println("[ERROR] Gagal ambil penugasan pending global:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa pending")
	}

	items := make([]botDTO.SiswaPendingResponse, 0, len(pending))
	for _, p := range pending {
		items = append(items, botDTO.ToSiswaPendingResponse(p))
	}
	return helper.Success(c, "Data siswa perlu reminder berhasil diambil", items)
}

// 🟢 GET /api/bot/siswa-pending/:idTugas
// Penugasan pending untuk satu tugas tertentu.
func (ctl *BotController) AmbilSiswaPendingByTugas(c *fiber.Ctx) error {
	tugasID, err := uuid.Parse(c.Params("idTugas"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var tugas tugasModel.TugasModel
	if err := ctl.DB.Where("tugas_id = ?", tugasID).First(&tugas).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil tugas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tugas")
	}

	pending, err := ctl.TugasRepo.FindPenugasanPending(tugasID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil penugasan pending:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa pending")
	}

	items := make([]botDTO.SiswaPendingResponse, 0, len(pending))
	for _, p := range pending {
		p.Tugas = &tugas
		items = append(items, botDTO.ToSiswaPendingResponse(p))
	}
	return helper.Success(c, "Data siswa pending berhasil diambil", items)
}

// 🟡 POST /api/bot/reminder
// Catat satu event reminder setelah bot berhasil kirim. Append-only:
// TIDAK mengubah status penugasan, dan tetap sah walau penugasan sudah
// bukan pending saat webhook ini masuk.
func (ctl *BotController) CatatReminder(c *fiber.Ctx) error {
	var req botDTO.CatatReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var p tugasModel.PenugasanModel
	if err := ctl.DB.Where("penugasan_id = ?", req.PenugasanID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil penugasan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data penugasan")
	}

	dikirimPada := time.Now()
	if req.DikirimPada != nil {
		dikirimPada = *req.DikirimPada
	}

	reminder := botModel.BotReminderModel{
		BotReminderPenugasanID: p.PenugasanID,
		BotReminderStatus:      botModel.ReminderTerkirim,
		BotReminderDikirimPada: dikirimPada,
	}
	if err := ctl.DB.Create(&reminder).Error; err != nil {
		log.Println("[ERROR] Gagal catat reminder:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat reminder")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Reminder berhasil dicatat",
		botDTO.ToBotReminderResponse(reminder))
}

// 🟡 POST /api/bot/webhook/status
// Webhook status pengiriman dari bot: hanya menyentuh baris reminder,
// bukan penugasan.
func (ctl *BotController) WebhookStatus(c *fiber.Ctx) error {
	var req botDTO.WebhookStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.Model(&botModel.BotReminderModel{}).
		Where("bot_reminder_id = ?", req.ReminderID).
		Update("bot_reminder_status", req.Status)
	if res.Error != nil {
		log.Println("[ERROR] Gagal update status reminder:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update status reminder")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Reminder tidak ditemukan")
	}

	return helper.Success(c, "Status reminder berhasil diperbarui", fiber.Map{
		"reminder_id": req.ReminderID,
		"status":      req.Status,
	})
}

/* =========================================================
   Endpoint guru (JWT) — trigger & riwayat reminder
   ========================================================= */

// 🟡 POST /api/tugas/:id/reminder (guru)
// Minta bot mengingatkan semua penugasan yang masih pending: satu baris
// reminder ber-status "diminta" per penugasan.
func (ctl *BotController) KirimReminder(c *fiber.Ctx) error {
	guruID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	tugasID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	if _, err := ctl.TugasRepo.FindTugasByIDMilikGuru(tugasID, guruID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan atau Anda tidak memiliki akses")
		}
		log.Println("[ERROR] Gagal cek kepemilikan tugas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses permintaan reminder")
	}

	pending, err := ctl.TugasRepo.FindPenugasanPending(tugasID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil penugasan pending:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses permintaan reminder")
	}
	if len(pending) == 0 {
		return helper.Success(c, "Tidak ada penugasan pending untuk diingatkan", fiber.Map{"total": 0})
	}

	now := time.Now()
	reminders := make([]botModel.BotReminderModel, 0, len(pending))
	for _, p := range pending {
		reminders = append(reminders, botModel.BotReminderModel{
			BotReminderPenugasanID: p.PenugasanID,
			BotReminderStatus:      botModel.ReminderDiminta,
			BotReminderDikirimPada: now,
		})
	}
	if err := ctl.DB.Create(&reminders).Error; err != nil {
		log.Println("[ERROR] Gagal simpan permintaan reminder:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan permintaan reminder")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Permintaan reminder berhasil dicatat",
		fiber.Map{"total": len(reminders)})
}

// 🟢 GET /api/tugas/:idTugas/reminder (guru)
// Riwayat reminder untuk satu tugas milik guru.
func (ctl *BotController) AmbilReminder(c *fiber.Ctx) error {
	guruID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	tugasID, err := uuid.Parse(c.Params("idTugas"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	if _, err := ctl.TugasRepo.FindTugasByIDMilikGuru(tugasID, guruID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan atau Anda tidak memiliki akses")
		}
		log.Println("[ERROR] Gagal cek kepemilikan tugas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat reminder")
	}

	var reminders []botModel.BotReminderModel
	if err := ctl.DB.
		Joins("JOIN penugasan ON penugasan.penugasan_id = bot_reminders.bot_reminder_penugasan_id").
		Where("penugasan.penugasan_tugas_id = ?", tugasID).
		Order("bot_reminders.created_at DESC").
		Find(&reminders).Error; err != nil {
		log.Println("[ERROR] Gagal ambil riwayat reminder:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat reminder")
	}

	items := make([]botDTO.BotReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, botDTO.ToBotReminderResponse(r))
	}
	return helper.Success(c, "Riwayat reminder berhasil diambil", items)
}
