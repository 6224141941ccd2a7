package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Jenis target tugas
const (
	TargetSiswa = "siswa" // id_target berisi array UUID siswa
	TargetKelas = "kelas" // id_target berisi array {kelas, jurusan}
)

// Tipe pengumpulan tugas
const (
	TipePengumpulanLink     = "link"     // wajib kirim link_drive saat submit
	TipePengumpulanLangsung = "langsung" // cukup tandai selesai, tanpa payload
)

// TargetKelasItem adalah satu entri target untuk tugas ber-target kelas.
type TargetKelasItem struct {
	Kelas   string `json:"kelas"`
	Jurusan string `json:"jurusan"`
}

// TugasModel merepresentasikan tabel tugas. Spesifikasi target disimpan
// apa adanya sebagai JSONB (bentuknya tergantung tugas_target); daftar
// penerima konkret hidup di tabel penugasan.
type TugasModel struct {
	TugasID              uuid.UUID      `gorm:"column:tugas_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tugas_id"`
	TugasGuruID          uuid.UUID      `gorm:"column:tugas_guru_id;type:uuid;not null;index" json:"tugas_guru_id"`
	TugasJudul           string         `gorm:"column:tugas_judul;size:255;not null" json:"tugas_judul"`
	TugasTarget          string         `gorm:"column:tugas_target;type:varchar(10);not null" json:"tugas_target"`
	TugasIDTarget        datatypes.JSON `gorm:"column:tugas_id_target;not null" json:"tugas_id_target"`
	TugasTipePengumpulan string         `gorm:"column:tugas_tipe_pengumpulan;type:varchar(10);not null;default:'link'" json:"tugas_tipe_pengumpulan"`
	TugasTampilkanNilai  bool           `gorm:"column:tugas_tampilkan_nilai;not null;default:false" json:"tugas_tampilkan_nilai"`

	Guru      *userModel.UserModel `gorm:"foreignKey:TugasGuruID;references:ID" json:"guru,omitempty"`
	Penugasan []PenugasanModel     `gorm:"foreignKey:PenugasanTugasID;references:TugasID" json:"penugasan,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName override nama tabel
func (TugasModel) TableName() string {
	return "tugas"
}
