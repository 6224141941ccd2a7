package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tugasDTO "sekolahku_backend/internals/features/assignments/tugas/dto"
	"sekolahku_backend/internals/features/assignments/tugas/service"
	helper "sekolahku_backend/internals/helpers"
)

// 🟡 POST /api/tugas/:id/submit (siswa)
// Transisi pending/dikirim → dikirim oleh siswa pemilik penugasan.
// Submit ulang saat masih dikirim menimpa link & tanggal pengumpulan.
func (ctl *TugasController) AjukanPenugasan(c *fiber.Ctx) error {
	siswaID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	tugasID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	// tugas tipe langsung boleh tanpa body sama sekali
	var req tugasDTO.AjukanPenugasanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := validator.New().Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	p, err := ctl.Repo.FindPenugasanByTugasDanSiswa(tugasID, siswaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil penugasan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data penugasan")
	}
	if p.Tugas == nil {
		log.Println("[ERROR] Penugasan tanpa tugas induk:", p.PenugasanID)
		return helper.Error(c, fiber.StatusInternalServerError, "Data tugas tidak konsisten")
	}

	changes, err := service.AjukanPenugasan(p, p.Tugas.TugasTipePengumpulan, req.LinkDrive, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPenugasanSudahFinal):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrLinkDriveTidakValid):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Println("[ERROR] Gagal proses pengajuan:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengajukan penugasan")
		}
	}

	if err := ctl.Repo.UpdatePenugasanFields(p.PenugasanID, changes); err != nil {
		log.Println("[ERROR] Gagal update penugasan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengajuan")
	}

	return helper.Success(c, "Penugasan berhasil diajukan", tugasDTO.ToPenugasanResponse(*p))
}

// 🟡 PUT /api/tugas/penugasan/:id/status (guru)
// Finalisasi oleh guru pemilik tugas induk: selesai atau ditolak, nilai &
// catatan opsional. Boleh dari pending (lompati dikirim) dan boleh diulang
// untuk koreksi nilai.
func (ctl *TugasController) UpdateStatusPenugasan(c *fiber.Ctx) error {
	guruID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	penugasanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penugasan tidak valid")
	}

	var req tugasDTO.UpdateStatusPenugasanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	p, err := ctl.Repo.FindPenugasanByID(penugasanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil penugasan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data penugasan")
	}
	if p.Tugas == nil || p.Tugas.TugasGuruID != guruID {
		return helper.Error(c, fiber.StatusForbidden, "Anda tidak memiliki akses untuk mengubah penugasan ini")
	}

	changes, err := service.FinalisasiPenugasan(p, req.Status, req.Nilai, req.CatatanGuru)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNilaiDiLuarRentang), errors.Is(err, service.ErrStatusTidakDikenal):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Println("[ERROR] Gagal proses finalisasi:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah status penugasan")
		}
	}

	if err := ctl.Repo.UpdatePenugasanFields(p.PenugasanID, changes); err != nil {
		log.Println("[ERROR] Gagal update status penugasan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan status penugasan")
	}

	return helper.Success(c, "Status penugasan berhasil diubah", tugasDTO.ToPenugasanFinalResponse(*p))
}
