package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	tugasDTO "sekolahku_backend/internals/features/assignments/tugas/dto"
	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
	tugasRepo "sekolahku_backend/internals/features/assignments/tugas/repository"
	"sekolahku_backend/internals/features/assignments/tugas/service"
	helper "sekolahku_backend/internals/helpers"
)

type TugasController struct {
	DB   *gorm.DB
	Repo *tugasRepo.TugasRepository
}

func NewTugasController(db *gorm.DB) *TugasController {
	return &TugasController{DB: db, Repo: tugasRepo.NewTugasRepository(db)}
}

// 🟡 POST /api/tugas (guru)
// Buat tugas baru: validasi bentuk target, expand lewat resolver, lalu
// simpan tugas + satu penugasan per siswa dalam SATU transaksi.
// Kalau resolusi gagal, tidak ada apa pun yang tersimpan.
func (ctl *TugasController) BuatTugas(c *fiber.Ctx) error {
	guruID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req tugasDTO.CreateTugasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// bongkar union target sesuai jenisnya
	siswaIDs, kelasTarget, err := req.ParseTarget()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// expand target → himpunan siswa unik
	penerima, err := service.ResolveTargetSiswa(ctl.Repo, req.TugasTarget, siswaIDs, kelasTarget)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTargetTidakValid), errors.Is(err, service.ErrSiswaKosong):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Println("[ERROR] Gagal resolve target tugas:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses target tugas")
		}
	}

	tugas := tugasModel.TugasModel{
		TugasGuruID:          guruID,
		TugasJudul:           req.TugasJudul,
		TugasTarget:          req.TugasTarget,
		TugasIDTarget:        datatypes.JSON(req.TugasIDTarget),
		TugasTipePengumpulan: req.TugasTipePengumpulan,
		TugasTampilkanNilai:  req.TugasTampilkanNilai,
	}

	// all-or-nothing: tugas + seluruh penugasan, atau tidak sama sekali
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tugas).Error; err != nil {
			return err
		}
		penugasan := make([]tugasModel.PenugasanModel, 0, len(penerima))
		for _, siswaID := range penerima {
			penugasan = append(penugasan, tugasModel.PenugasanModel{
				PenugasanTugasID: tugas.TugasID,
				PenugasanSiswaID: siswaID,
				PenugasanStatus:  tugasModel.StatusPending,
			})
		}
		return tx.Create(&penugasan).Error
	}); err != nil {
		log.Println("[ERROR] Gagal simpan tugas + penugasan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat tugas")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tugas berhasil dibuat",
		tugasDTO.ToTugasCreatedResponse(tugas, len(penerima)))
}

// 🟢 GET /api/tugas (guru & siswa)
// Guru: semua tugas miliknya + agregat status. Siswa: hanya tugas yang
// punya penugasan miliknya, dengan status sendiri (nilai ikut kebijakan
// visibilitas).
func (ctl *TugasController) AmbilTugas(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromLocals(c)
	if err != nil {
		return err
	}

	if role == constants.RoleGuru {
		tugas, err := ctl.Repo.FindTugasMilikGuru(userID)
		if err != nil {
			log.Println("[ERROR] Gagal ambil tugas guru:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tugas")
		}
		items := make([]tugasDTO.TugasGuruItemResponse, 0, len(tugas))
		for _, t := range tugas {
			items = append(items, tugasDTO.ToTugasGuruItemResponse(t))
		}
		return helper.Success(c, "Data tugas berhasil diambil", items)
	}

	tugas, err := ctl.Repo.FindTugasUntukSiswa(userID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil tugas siswa:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data tugas")
	}
	items := make([]tugasDTO.TugasSiswaItemResponse, 0, len(tugas))
	for _, t := range tugas {
		if len(t.Penugasan) == 0 {
			continue
		}
		items = append(items, tugasDTO.ToTugasSiswaItemResponse(t, t.Penugasan[0]))
	}
	return helper.Success(c, "Data tugas berhasil diambil", items)
}

// 🟢 GET /api/tugas/:id/detail (guru)
// Breakdown lengkap per siswa. 404 untuk tugas yang tidak ada ATAU bukan
// milik guru ini — sengaja tidak dibedakan.
func (ctl *TugasController) AmbilDetailTugas(c *fiber.Ctx) error {
	guruID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	tugasID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	tugas, err := ctl.Repo.FindTugasByIDMilikGuru(tugasID, guruID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan atau Anda tidak memiliki akses")
		}
		log.Println("[ERROR] Gagal ambil detail tugas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil detail tugas")
	}

	return helper.Success(c, "Detail tugas berhasil diambil", tugasDTO.ToTugasDetailResponse(*tugas))
}

// 🟢 GET /api/tugas/:id/pending (guru)
// Daftar penugasan yang masih pending untuk satu tugas milik guru.
func (ctl *TugasController) AmbilPenugasanPending(c *fiber.Ctx) error {
	guruID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	tugasID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	if _, err := ctl.Repo.FindTugasByIDMilikGuru(tugasID, guruID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan atau Anda tidak memiliki akses")
		}
		log.Println("[ERROR] Gagal cek kepemilikan tugas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data penugasan")
	}

	pending, err := ctl.Repo.FindPenugasanPending(tugasID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil penugasan pending:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data penugasan")
	}

	items := make([]tugasDTO.PenugasanPendingResponse, 0, len(pending))
	for _, p := range pending {
		items = append(items, tugasDTO.ToPenugasanPendingResponse(p))
	}
	return helper.Success(c, "Data penugasan pending berhasil diambil", items)
}
