package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
	"sekolahku_backend/internals/constants"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

type TugasRepository struct {
	DB *gorm.DB
}

func NewTugasRepository(db *gorm.DB) *TugasRepository {
	return &TugasRepository{DB: db}
}

/* =========================================================
   Roster (dipakai resolver penerima)
   ========================================================= */

// FindSiswaByIDs hanya mengembalikan user ber-role siswa — user yang tidak
// ada atau bukan siswa tidak ikut, biar resolver bisa deteksi ID tak valid.
func (r *TugasRepository) FindSiswaByIDs(ids []uuid.UUID) ([]userModel.UserModel, error) {
	var siswa []userModel.UserModel
	if err := r.DB.
		Where("id IN ? AND role = ?", ids, constants.RoleSiswa).
		Find(&siswa).Error; err != nil {
		return nil, err
	}
	return siswa, nil
}

func (r *TugasRepository) FindSiswaByKelasJurusan(kelas, jurusan string) ([]userModel.UserModel, error) {
	var siswa []userModel.UserModel
	if err := r.DB.
		Where("role = ? AND kelas = ? AND jurusan = ?", constants.RoleSiswa, kelas, jurusan).
		Order("created_at ASC").
		Find(&siswa).Error; err != nil {
		return nil, err
	}
	return siswa, nil
}

/* =========================================================
   Tugas
   ========================================================= */

func (r *TugasRepository) FindTugasMilikGuru(guruID uuid.UUID) ([]tugasModel.TugasModel, error) {
	var tugas []tugasModel.TugasModel
	if err := r.DB.
		Where("tugas_guru_id = ?", guruID).
		Preload("Penugasan").
		Order("created_at DESC").
		Find(&tugas).Error; err != nil {
		return nil, err
	}
	return tugas, nil
}

// FindTugasUntukSiswa hanya tugas yang punya penugasan milik siswa ini;
// preload penugasan difilter ke milik siswa yang sama.
func (r *TugasRepository) FindTugasUntukSiswa(siswaID uuid.UUID) ([]tugasModel.TugasModel, error) {
	var tugas []tugasModel.TugasModel
	if err := r.DB.
		Joins("JOIN penugasan ON penugasan.penugasan_tugas_id = tugas.tugas_id").
		Where("penugasan.penugasan_siswa_id = ?", siswaID).
		Preload("Guru").
		Preload("Penugasan", "penugasan_siswa_id = ?", siswaID).
		Order("tugas.created_at DESC").
		Find(&tugas).Error; err != nil {
		return nil, err
	}
	return tugas, nil
}

// FindTugasByIDMilikGuru — gorm.ErrRecordNotFound baik untuk tugas yang
// tidak ada maupun yang bukan milik guru ini (sengaja tidak dibedakan).
func (r *TugasRepository) FindTugasByIDMilikGuru(tugasID, guruID uuid.UUID) (*tugasModel.TugasModel, error) {
	var tugas tugasModel.TugasModel
	if err := r.DB.
		Where("tugas_id = ? AND tugas_guru_id = ?", tugasID, guruID).
		Preload("Penugasan.Siswa").
		First(&tugas).Error; err != nil {
		return nil, err
	}
	return &tugas, nil
}

/* =========================================================
   Penugasan
   ========================================================= */

func (r *TugasRepository) FindPenugasanByTugasDanSiswa(tugasID, siswaID uuid.UUID) (*tugasModel.PenugasanModel, error) {
	var p tugasModel.PenugasanModel
	if err := r.DB.
		Where("penugasan_tugas_id = ? AND penugasan_siswa_id = ?", tugasID, siswaID).
		Preload("Tugas").
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TugasRepository) FindPenugasanByID(penugasanID uuid.UUID) (*tugasModel.PenugasanModel, error) {
	var p tugasModel.PenugasanModel
	if err := r.DB.
		Where("penugasan_id = ?", penugasanID).
		Preload("Tugas").
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TugasRepository) FindPenugasanPending(tugasID uuid.UUID) ([]tugasModel.PenugasanModel, error) {
	var list []tugasModel.PenugasanModel
	if err := r.DB.
		Where("penugasan_tugas_id = ? AND penugasan_status = ?", tugasID, tugasModel.StatusPending).
		Preload("Siswa").
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdatePenugasanFields — update field-scoped supaya submit siswa dan
// finalisasi guru yang bersamaan tidak saling menimpa kolom masing-masing.
func (r *TugasRepository) UpdatePenugasanFields(penugasanID uuid.UUID, fields map[string]interface{}) error {
	return r.DB.Model(&tugasModel.PenugasanModel{}).
		Where("penugasan_id = ?", penugasanID).
		Updates(fields).Error
}
