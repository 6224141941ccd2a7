package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
)

func TestParseTarget_Siswa(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	raw, _ := json.Marshal([]string{a.String(), b.String()})

	req := CreateTugasRequest{TugasTarget: tugasModel.TargetSiswa, TugasIDTarget: raw}
	ids, kelas, err := req.ParseTarget()
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.Nil(t, kelas)
}

func TestParseTarget_SiswaIDRusak(t *testing.T) {
	req := CreateTugasRequest{
		TugasTarget:   tugasModel.TargetSiswa,
		TugasIDTarget: json.RawMessage(`["bukan-uuid"]`),
	}
	_, _, err := req.ParseTarget()
	assert.Error(t, err)
}

func TestParseTarget_SiswaBentukSalah(t *testing.T) {
	// target siswa tapi isinya bentuk target kelas
	req := CreateTugasRequest{
		TugasTarget:   tugasModel.TargetSiswa,
		TugasIDTarget: json.RawMessage(`[{"kelas":"XII","jurusan":"RPL"}]`),
	}
	_, _, err := req.ParseTarget()
	assert.Error(t, err)
}

func TestParseTarget_SiswaKosong(t *testing.T) {
	req := CreateTugasRequest{
		TugasTarget:   tugasModel.TargetSiswa,
		TugasIDTarget: json.RawMessage(`[]`),
	}
	_, _, err := req.ParseTarget()
	assert.Error(t, err)
}

func TestParseTarget_Kelas(t *testing.T) {
	req := CreateTugasRequest{
		TugasTarget:   tugasModel.TargetKelas,
		TugasIDTarget: json.RawMessage(`[{"kelas":" XII ","jurusan":"RPL"},{"kelas":"XI","jurusan":"TKJ"}]`),
	}
	ids, kelas, err := req.ParseTarget()
	require.NoError(t, err)
	assert.Nil(t, ids)
	require.Len(t, kelas, 2)
	assert.Equal(t, "XII", kelas[0].Kelas) // dipangkas
	assert.Equal(t, "RPL", kelas[0].Jurusan)
}

func TestParseTarget_KelasTanpaJurusan(t *testing.T) {
	req := CreateTugasRequest{
		TugasTarget:   tugasModel.TargetKelas,
		TugasIDTarget: json.RawMessage(`[{"kelas":"XII","jurusan":""}]`),
	}
	_, _, err := req.ParseTarget()
	assert.Error(t, err)
}

func TestParseTarget_KelasBentukSalah(t *testing.T) {
	id := uuid.New()
	raw, _ := json.Marshal([]string{id.String()})
	req := CreateTugasRequest{TugasTarget: tugasModel.TargetKelas, TugasIDTarget: raw}

	_, _, err := req.ParseTarget()
	assert.Error(t, err)
}

func TestParseTarget_TargetTidakDikenal(t *testing.T) {
	req := CreateTugasRequest{TugasTarget: "sekolah", TugasIDTarget: json.RawMessage(`[]`)}

	_, _, err := req.ParseTarget()
	assert.Error(t, err)
}

func TestBolehLihatNilai(t *testing.T) {
	assert.True(t, BolehLihatNilai(true, constants.RoleGuru))
	assert.True(t, BolehLihatNilai(false, constants.RoleGuru))
	assert.True(t, BolehLihatNilai(true, constants.RoleSiswa))
	assert.False(t, BolehLihatNilai(false, constants.RoleSiswa))
}

func TestToTugasSiswaItemResponse_SembunyikanNilai(t *testing.T) {
	nilai := 88
	catatan := "Kerjakan ulang bagian 2"
	p := tugasModel.PenugasanModel{
		PenugasanStatus:      tugasModel.StatusSelesai,
		PenugasanNilai:       &nilai,
		PenugasanCatatanGuru: &catatan,
	}

	tersembunyi := ToTugasSiswaItemResponse(tugasModel.TugasModel{TugasTampilkanNilai: false}, p)
	assert.Nil(t, tersembunyi.Nilai)
	assert.Nil(t, tersembunyi.CatatanGuru)
	assert.Equal(t, tugasModel.StatusSelesai, tersembunyi.Status)

	tampil := ToTugasSiswaItemResponse(tugasModel.TugasModel{TugasTampilkanNilai: true}, p)
	require.NotNil(t, tampil.Nilai)
	assert.Equal(t, 88, *tampil.Nilai)
	assert.Equal(t, "Kerjakan ulang bagian 2", *tampil.CatatanGuru)
}

func TestHitungStatistik(t *testing.T) {
	penugasan := []tugasModel.PenugasanModel{
		{PenugasanStatus: tugasModel.StatusPending},
		{PenugasanStatus: tugasModel.StatusPending},
		{PenugasanStatus: tugasModel.StatusDikirim},
		{PenugasanStatus: tugasModel.StatusSelesai},
		{PenugasanStatus: tugasModel.StatusDitolak},
	}

	s := HitungStatistik(penugasan)
	assert.Equal(t, 5, s.TotalSiswa)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Dikirim)
	assert.Equal(t, 1, s.Selesai)
	assert.Equal(t, 1, s.Ditolak)
}
