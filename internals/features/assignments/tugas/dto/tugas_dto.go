package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
	"sekolahku_backend/internals/constants"
)

/* =========================================================
   CREATE
   ========================================================= */

// CreateTugasRequest — tugas_id_target dibiarkan mentah (RawMessage) karena
// bentuknya union: array UUID siswa ATAU array {kelas, jurusan}. Validasi
// bentuk dilakukan ParseTarget sebelum menyentuh resolver.
type CreateTugasRequest struct {
	TugasJudul           string          `json:"tugas_judul" validate:"required,min=1,max=255"`
	TugasTarget          string          `json:"tugas_target" validate:"required,oneof=siswa kelas"`
	TugasIDTarget        json.RawMessage `json:"tugas_id_target" validate:"required"`
	TugasTipePengumpulan string          `json:"tugas_tipe_pengumpulan" validate:"required,oneof=link langsung"`
	TugasTampilkanNilai  bool            `json:"tugas_tampilkan_nilai"`
}

// ParseTarget membongkar union tugas_id_target sesuai tugas_target.
// Bentuk yang tidak cocok dengan jenis target dianggap target tidak valid.
func (r *CreateTugasRequest) ParseTarget() ([]uuid.UUID, []tugasModel.TargetKelasItem, error) {
	switch r.TugasTarget {
	case tugasModel.TargetSiswa:
		var rawIDs []string
		if err := json.Unmarshal(r.TugasIDTarget, &rawIDs); err != nil {
			return nil, nil, errors.New("tugas_id_target harus berupa array ID siswa")
		}
		if len(rawIDs) == 0 {
			return nil, nil, errors.New("tugas_id_target tidak boleh kosong")
		}
		ids := make([]uuid.UUID, 0, len(rawIDs))
		for _, raw := range rawIDs {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				return nil, nil, errors.New("tugas_id_target berisi ID siswa yang tidak valid")
			}
			ids = append(ids, id)
		}
		return ids, nil, nil

	case tugasModel.TargetKelas:
		var items []tugasModel.TargetKelasItem
		if err := json.Unmarshal(r.TugasIDTarget, &items); err != nil {
			return nil, nil, errors.New("tugas_id_target harus berupa array {kelas, jurusan}")
		}
		if len(items) == 0 {
			return nil, nil, errors.New("tugas_id_target tidak boleh kosong")
		}
		for i := range items {
			items[i].Kelas = strings.TrimSpace(items[i].Kelas)
			items[i].Jurusan = strings.TrimSpace(items[i].Jurusan)
			if items[i].Kelas == "" || items[i].Jurusan == "" {
				return nil, nil, errors.New("format target kelas harus berisi kelas dan jurusan")
			}
		}
		return nil, items, nil
	}

	return nil, nil, errors.New("tugas_target tidak dikenal")
}

/* =========================================================
   VISIBILITY POLICY
   ========================================================= */

// BolehLihatNilai — guru pemilik selalu boleh; siswa hanya jika guru
// mengaktifkan tampilkan_nilai. Proyeksi murni, tidak pernah memodifikasi
// record tersimpan.
func BolehLihatNilai(tampilkanNilai bool, viewerRole string) bool {
	return viewerRole == constants.RoleGuru || tampilkanNilai
}

/* =========================================================
   RESPONSES
   ========================================================= */

type TugasCreatedResponse struct {
	TugasID              uuid.UUID       `json:"tugas_id"`
	TugasGuruID          uuid.UUID       `json:"tugas_guru_id"`
	TugasJudul           string          `json:"tugas_judul"`
	TugasTarget          string          `json:"tugas_target"`
	TugasIDTarget        json.RawMessage `json:"tugas_id_target"`
	TugasTipePengumpulan string          `json:"tugas_tipe_pengumpulan"`
	TugasTampilkanNilai  bool            `json:"tugas_tampilkan_nilai"`
	TotalSiswa           int             `json:"total_siswa"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func ToTugasCreatedResponse(m tugasModel.TugasModel, totalSiswa int) TugasCreatedResponse {
	return TugasCreatedResponse{
		TugasID:              m.TugasID,
		TugasGuruID:          m.TugasGuruID,
		TugasJudul:           m.TugasJudul,
		TugasTarget:          m.TugasTarget,
		TugasIDTarget:        json.RawMessage(m.TugasIDTarget),
		TugasTipePengumpulan: m.TugasTipePengumpulan,
		TugasTampilkanNilai:  m.TugasTampilkanNilai,
		TotalSiswa:           totalSiswa,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// StatistikPenugasan — agregat jumlah penugasan per status untuk satu tugas.
type StatistikPenugasan struct {
	TotalSiswa int `json:"total_siswa"`
	Pending    int `json:"pending"`
	Dikirim    int `json:"dikirim"`
	Selesai    int `json:"selesai"`
	Ditolak    int `json:"ditolak"`
}

func HitungStatistik(penugasan []tugasModel.PenugasanModel) StatistikPenugasan {
	s := StatistikPenugasan{TotalSiswa: len(penugasan)}
	for _, p := range penugasan {
		switch p.PenugasanStatus {
		case tugasModel.StatusPending:
			s.Pending++
		case tugasModel.StatusDikirim:
			s.Dikirim++
		case tugasModel.StatusSelesai:
			s.Selesai++
		case tugasModel.StatusDitolak:
			s.Ditolak++
		}
	}
	return s
}

// Item list untuk guru (agregat, tanpa detail siswa)
type TugasGuruItemResponse struct {
	TugasID              uuid.UUID          `json:"tugas_id"`
	TugasJudul           string             `json:"tugas_judul"`
	TugasTarget          string             `json:"tugas_target"`
	TugasTipePengumpulan string             `json:"tugas_tipe_pengumpulan"`
	TugasTampilkanNilai  bool               `json:"tugas_tampilkan_nilai"`
	Statistik            StatistikPenugasan `json:"statistik"`
	CreatedAt            time.Time          `json:"created_at"`
}

func ToTugasGuruItemResponse(m tugasModel.TugasModel) TugasGuruItemResponse {
	return TugasGuruItemResponse{
		TugasID:              m.TugasID,
		TugasJudul:           m.TugasJudul,
		TugasTarget:          m.TugasTarget,
		TugasTipePengumpulan: m.TugasTipePengumpulan,
		TugasTampilkanNilai:  m.TugasTampilkanNilai,
		Statistik:            HitungStatistik(m.Penugasan),
		CreatedAt:            m.CreatedAt,
	}
}

// Item list untuk siswa: hanya status miliknya sendiri; nilai & catatan
// mengikuti kebijakan visibilitas.
type TugasSiswaItemResponse struct {
	TugasID              uuid.UUID `json:"tugas_id"`
	TugasJudul           string    `json:"tugas_judul"`
	Guru                 string    `json:"guru,omitempty"`
	TugasTipePengumpulan string    `json:"tugas_tipe_pengumpulan"`
	TugasTampilkanNilai  bool      `json:"tugas_tampilkan_nilai"`
	Status               string    `json:"status"`
	Nilai                *int      `json:"nilai,omitempty"`
	CatatanGuru          *string   `json:"catatan_guru,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func ToTugasSiswaItemResponse(m tugasModel.TugasModel, p tugasModel.PenugasanModel) TugasSiswaItemResponse {
	resp := TugasSiswaItemResponse{
		TugasID:              m.TugasID,
		TugasJudul:           m.TugasJudul,
		TugasTipePengumpulan: m.TugasTipePengumpulan,
		TugasTampilkanNilai:  m.TugasTampilkanNilai,
		Status:               p.PenugasanStatus,
		CreatedAt:            m.CreatedAt,
	}
	if m.Guru != nil {
		resp.Guru = m.Guru.Name
	}
	if BolehLihatNilai(m.TugasTampilkanNilai, constants.RoleSiswa) {
		resp.Nilai = p.PenugasanNilai
		resp.CatatanGuru = p.PenugasanCatatanGuru
	}
	return resp
}

// Detail per siswa untuk guru pemilik — nilai & catatan selalu tampil.
type PenugasanDetailResponse struct {
	PenugasanID         uuid.UUID             `json:"penugasan_id"`
	Siswa               SiswaRingkasResponse  `json:"siswa"`
	Status              string                `json:"status"`
	LinkDrive           *string               `json:"link_drive,omitempty"`
	TanggalPengumpulan  *time.Time            `json:"tanggal_pengumpulan,omitempty"`
	Nilai               *int                  `json:"nilai,omitempty"`
	CatatanGuru         *string               `json:"catatan_guru,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

func ToPenugasanDetailResponse(p tugasModel.PenugasanModel) PenugasanDetailResponse {
	resp := PenugasanDetailResponse{
		PenugasanID:        p.PenugasanID,
		Status:             p.PenugasanStatus,
		LinkDrive:          p.PenugasanLinkDrive,
		TanggalPengumpulan: p.PenugasanTanggalPengumpulan,
		Nilai:              p.PenugasanNilai,
		CatatanGuru:        p.PenugasanCatatanGuru,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.Siswa != nil {
		resp.Siswa = ToSiswaRingkasResponse(*p.Siswa)
	}
	return resp
}

type TugasDetailResponse struct {
	TugasID              uuid.UUID                 `json:"tugas_id"`
	TugasJudul           string                    `json:"tugas_judul"`
	TugasTarget          string                    `json:"tugas_target"`
	TugasIDTarget        json.RawMessage           `json:"tugas_id_target"`
	TugasTipePengumpulan string                    `json:"tugas_tipe_pengumpulan"`
	TugasTampilkanNilai  bool                      `json:"tugas_tampilkan_nilai"`
	Statistik            StatistikPenugasan        `json:"statistik"`
	Penugasan            []PenugasanDetailResponse `json:"penugasan"`
	CreatedAt            time.Time                 `json:"created_at"`
}

func ToTugasDetailResponse(m tugasModel.TugasModel) TugasDetailResponse {
	items := make([]PenugasanDetailResponse, 0, len(m.Penugasan))
	for _, p := range m.Penugasan {
		items = append(items, ToPenugasanDetailResponse(p))
	}
	return TugasDetailResponse{
		TugasID:              m.TugasID,
		TugasJudul:           m.TugasJudul,
		TugasTarget:          m.TugasTarget,
		TugasIDTarget:        json.RawMessage(m.TugasIDTarget),
		TugasTipePengumpulan: m.TugasTipePengumpulan,
		TugasTampilkanNilai:  m.TugasTampilkanNilai,
		Statistik:            HitungStatistik(m.Penugasan),
		Penugasan:            items,
		CreatedAt:            m.CreatedAt,
	}
}
