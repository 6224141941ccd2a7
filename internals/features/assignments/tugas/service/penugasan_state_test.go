package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestAjukanPenugasan_LinkMode(t *testing.T) {
	p := &tugasModel.PenugasanModel{PenugasanStatus: tugasModel.StatusPending}
	now := time.Now()

	changes, err := AjukanPenugasan(p, tugasModel.TipePengumpulanLink,
		strPtr("https://drive.google.com/file/d/abc"), now)
	require.NoError(t, err)

	assert.Equal(t, tugasModel.StatusDikirim, changes["penugasan_status"])
	assert.Equal(t, now, changes["penugasan_tanggal_pengumpulan"])
	assert.Equal(t, "https://drive.google.com/file/d/abc", changes["penugasan_link_drive"])
	assert.Equal(t, tugasModel.StatusDikirim, p.PenugasanStatus)
}

func TestAjukanPenugasan_LinkWajibDiLinkMode(t *testing.T) {
	now := time.Now()
	kasus := []*string{nil, strPtr(""), strPtr("bukan-url"), strPtr("ftp://x.com/a")}
	for _, link := range kasus {
		p := &tugasModel.PenugasanModel{PenugasanStatus: tugasModel.StatusPending}
		_, err := AjukanPenugasan(p, tugasModel.TipePengumpulanLink, link, now)
		assert.ErrorIs(t, err, ErrLinkDriveTidakValid)
		// record tidak berubah saat gagal
		assert.Equal(t, tugasModel.StatusPending, p.PenugasanStatus)
	}
}

func TestAjukanPenugasan_LangsungAbaikanLink(t *testing.T) {
	p := &tugasModel.PenugasanModel{PenugasanStatus: tugasModel.StatusPending}

	changes, err := AjukanPenugasan(p, tugasModel.TipePengumpulanLangsung, nil, time.Now())
	require.NoError(t, err)

	_, ada := changes["penugasan_link_drive"]
	assert.False(t, ada)
	assert.Equal(t, tugasModel.StatusDikirim, changes["penugasan_status"])
}

func TestAjukanPenugasan_SubmitUlangSebelumDinilai(t *testing.T) {
	lama := "https://old.example.com/a"
	p := &tugasModel.PenugasanModel{
		PenugasanStatus:    tugasModel.StatusDikirim,
		PenugasanLinkDrive: &lama,
	}

	changes, err := AjukanPenugasan(p, tugasModel.TipePengumpulanLink,
		strPtr("https://baru.example.com/b"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://baru.example.com/b", changes["penugasan_link_drive"])
	assert.Equal(t, "https://baru.example.com/b", *p.PenugasanLinkDrive)
}

func TestAjukanPenugasan_DiblokirSetelahFinal(t *testing.T) {
	for _, status := range []string{tugasModel.StatusSelesai, tugasModel.StatusDitolak} {
		p := &tugasModel.PenugasanModel{PenugasanStatus: status}
		_, err := AjukanPenugasan(p, tugasModel.TipePengumpulanLink,
			strPtr("https://drive.google.com/x"), time.Now())
		assert.ErrorIs(t, err, ErrPenugasanSudahFinal)
		assert.Equal(t, status, p.PenugasanStatus)
	}
}

func TestFinalisasiPenugasan_Selesai(t *testing.T) {
	p := &tugasModel.PenugasanModel{PenugasanStatus: tugasModel.StatusDikirim}

	changes, err := FinalisasiPenugasan(p, tugasModel.StatusSelesai, intPtr(90), strPtr("Bagus"))
	require.NoError(t, err)
	assert.Equal(t, tugasModel.StatusSelesai, changes["penugasan_status"])
	assert.Equal(t, 90, *p.PenugasanNilai)
	assert.Equal(t, "Bagus", *p.PenugasanCatatanGuru)
}

func TestFinalisasiPenugasan_BolehDariPending(t *testing.T) {
	// tugas tipe langsung: guru menilai tanpa siswa pernah submit
	p := &tugasModel.PenugasanModel{PenugasanStatus: tugasModel.StatusPending}

	_, err := FinalisasiPenugasan(p, tugasModel.StatusDitolak, nil, strPtr("Tidak mengumpulkan"))
	require.NoError(t, err)
	assert.Equal(t, tugasModel.StatusDitolak, p.PenugasanStatus)
	assert.Nil(t, p.PenugasanNilai)
}

func TestFinalisasiPenugasan_KoreksiNilai(t *testing.T) {
	// finalisasi ulang diperbolehkan untuk koreksi
	p := &tugasModel.PenugasanModel{
		PenugasanStatus: tugasModel.StatusSelesai,
		PenugasanNilai:  intPtr(70),
	}

	_, err := FinalisasiPenugasan(p, tugasModel.StatusSelesai, intPtr(85), nil)
	require.NoError(t, err)
	assert.Equal(t, 85, *p.PenugasanNilai)
	assert.Nil(t, p.PenugasanCatatanGuru)
}

func TestFinalisasiPenugasan_NilaiDiLuarRentang(t *testing.T) {
	for _, n := range []int{-1, 101} {
		p := &tugasModel.PenugasanModel{PenugasanStatus: tugasModel.StatusDikirim}
		_, err := FinalisasiPenugasan(p, tugasModel.StatusSelesai, intPtr(n), nil)
		assert.ErrorIs(t, err, ErrNilaiDiLuarRentang)
	}
}

func TestFinalisasiPenugasan_StatusTidakDikenal(t *testing.T) {
	p := &tugasModel.PenugasanModel{PenugasanStatus: tugasModel.StatusDikirim}

	for _, status := range []string{tugasModel.StatusPending, tugasModel.StatusDikirim, "lulus"} {
		_, err := FinalisasiPenugasan(p, status, nil, nil)
		assert.ErrorIs(t, err, ErrStatusTidakDikenal)
	}
}

func TestLinkDriveValid(t *testing.T) {
	assert.True(t, LinkDriveValid("https://drive.google.com/file/d/abc"))
	assert.True(t, LinkDriveValid("http://example.com/tugas.pdf"))
	assert.True(t, LinkDriveValid("  https://example.com/x  "))

	assert.False(t, LinkDriveValid(""))
	assert.False(t, LinkDriveValid("drive.google.com/abc"))
	assert.False(t, LinkDriveValid("ftp://example.com/x"))
	assert.False(t, LinkDriveValid("https://"))
}
