package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Status penugasan. Lifecycle: pending → dikirim → selesai | ditolak.
// selesai & ditolak adalah status terminal — tidak ada transisi keluar.
const (
	StatusPending = "pending"
	StatusDikirim = "dikirim"
	StatusSelesai = "selesai"
	StatusDitolak = "ditolak"
)

// PenugasanModel adalah record pelacakan per siswa untuk satu tugas.
// Tepat satu baris per pasangan (tugas, siswa).
type PenugasanModel struct {
	PenugasanID                  uuid.UUID  `gorm:"column:penugasan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"penugasan_id"`
	PenugasanTugasID             uuid.UUID  `gorm:"column:penugasan_tugas_id;type:uuid;not null;uniqueIndex:uq_penugasan_tugas_siswa" json:"penugasan_tugas_id"`
	PenugasanSiswaID             uuid.UUID  `gorm:"column:penugasan_siswa_id;type:uuid;not null;uniqueIndex:uq_penugasan_tugas_siswa;index" json:"penugasan_siswa_id"`
	PenugasanStatus              string     `gorm:"column:penugasan_status;type:varchar(10);not null;default:'pending';index" json:"penugasan_status"`
	PenugasanLinkDrive           *string    `gorm:"column:penugasan_link_drive;type:text" json:"penugasan_link_drive,omitempty"`
	PenugasanTanggalPengumpulan  *time.Time `gorm:"column:penugasan_tanggal_pengumpulan" json:"penugasan_tanggal_pengumpulan,omitempty"`
	PenugasanNilai               *int       `gorm:"column:penugasan_nilai" json:"penugasan_nilai,omitempty"`
	PenugasanCatatanGuru         *string    `gorm:"column:penugasan_catatan_guru;type:text" json:"penugasan_catatan_guru,omitempty"`

	Tugas *TugasModel          `gorm:"foreignKey:PenugasanTugasID;references:TugasID" json:"tugas,omitempty"`
	Siswa *userModel.UserModel `gorm:"foreignKey:PenugasanSiswaID;references:ID" json:"siswa,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName override nama tabel
func (PenugasanModel) TableName() string {
	return "penugasan"
}

// SudahFinal true jika status sudah terminal (selesai atau ditolak).
func (p *PenugasanModel) SudahFinal() bool {
	return p.PenugasanStatus == StatusSelesai || p.PenugasanStatus == StatusDitolak
}
