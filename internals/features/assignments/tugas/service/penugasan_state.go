package service

import (
	"errors"
	"net/url"
	"strings"
	"time"

	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
)

var (
	// ErrPenugasanSudahFinal — submit diblokir untuk status terminal
	// (selesai maupun ditolak).
	ErrPenugasanSudahFinal = errors.New("penugasan sudah difinalisasi, tidak dapat diubah")
	ErrLinkDriveTidakValid = errors.New("link_drive wajib diisi dan harus berupa URL yang valid")
	ErrNilaiDiLuarRentang  = errors.New("nilai harus berada di antara 0 sampai 100")
	ErrStatusTidakDikenal  = errors.New("status finalisasi harus selesai atau ditolak")
)

// AjukanPenugasan menerapkan transisi pengumpulan oleh siswa pada record
// dan mengembalikan kolom yang berubah untuk update field-scoped.
// Submit ulang saat status masih dikirim diperbolehkan (menimpa link &
// tanggal) — model "kumpulkan ulang sebelum dinilai".
func AjukanPenugasan(p *tugasModel.PenugasanModel, tipePengumpulan string, linkDrive *string, now time.Time) (map[string]interface{}, error) {
	if p.SudahFinal() {
		return nil, ErrPenugasanSudahFinal
	}

	changes := map[string]interface{}{
		"penugasan_status":              tugasModel.StatusDikirim,
		"penugasan_tanggal_pengumpulan": now,
	}

	if tipePengumpulan == tugasModel.TipePengumpulanLink {
		if linkDrive == nil || !LinkDriveValid(*linkDrive) {
			return nil, ErrLinkDriveTidakValid
		}
		link := strings.TrimSpace(*linkDrive)
		changes["penugasan_link_drive"] = link
		p.PenugasanLinkDrive = &link
	}
	// tipe langsung: payload diabaikan, cukup tandai dikirim

	p.PenugasanStatus = tugasModel.StatusDikirim
	p.PenugasanTanggalPengumpulan = &now
	return changes, nil
}

// FinalisasiPenugasan menerapkan finalisasi oleh guru. Boleh dipanggil dari
// pending (melompati dikirim — dipakai tugas tipe langsung) dan boleh
// diulang pada record yang sudah final (koreksi nilai).
func FinalisasiPenugasan(p *tugasModel.PenugasanModel, status string, nilai *int, catatanGuru *string) (map[string]interface{}, error) {
	if status != tugasModel.StatusSelesai && status != tugasModel.StatusDitolak {
		return nil, ErrStatusTidakDikenal
	}
	if nilai != nil && (*nilai < 0 || *nilai > 100) {
		return nil, ErrNilaiDiLuarRentang
	}

	changes := map[string]interface{}{
		"penugasan_status":       status,
		"penugasan_nilai":        nilai,
		"penugasan_catatan_guru": catatanGuru,
	}

	p.PenugasanStatus = status
	p.PenugasanNilai = nilai
	p.PenugasanCatatanGuru = catatanGuru
	return changes, nil
}

// LinkDriveValid menerima URL http/https yang utuh.
func LinkDriveValid(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
