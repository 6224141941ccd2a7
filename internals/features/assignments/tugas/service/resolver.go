package service

import (
	"errors"

	"github.com/google/uuid"

	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

var (
	// ErrTargetTidakValid — ada ID yang tidak terdaftar / bukan siswa,
	// atau bentuk target tidak cocok dengan jenisnya.
	ErrTargetTidakValid = errors.New("beberapa ID siswa tidak valid")
	// ErrSiswaKosong — target valid tapi tidak menghasilkan satu siswa pun.
	ErrSiswaKosong = errors.New("tidak ada siswa ditemukan untuk target yang dipilih")
)

// RosterRepo menyediakan akses roster siswa untuk resolver penerima.
type RosterRepo interface {
	FindSiswaByIDs(ids []uuid.UUID) ([]userModel.UserModel, error)
	FindSiswaByKelasJurusan(kelas, jurusan string) ([]userModel.UserModel, error)
}

// ResolveTargetSiswa memperluas spesifikasi target menjadi himpunan siswa
// yang sudah dideduplikasi. Urutan hasil stabil (urutan pertama kali
// ditemukan) supaya pembuatan penugasan deterministik.
//
// Target "siswa": semua ID harus ada dan ber-role siswa, kalau tidak gagal
// ErrTargetTidakValid. Target "kelas": union semua pasangan (kelas, jurusan).
func ResolveTargetSiswa(repo RosterRepo, target string, siswaIDs []uuid.UUID, kelasTarget []tugasModel.TargetKelasItem) ([]uuid.UUID, error) {
	switch target {
	case tugasModel.TargetSiswa:
		uniq := dedupUUID(siswaIDs)
		if len(uniq) == 0 {
			return nil, ErrSiswaKosong
		}
		ditemukan, err := repo.FindSiswaByIDs(uniq)
		if err != nil {
			return nil, err
		}
		if len(ditemukan) != len(uniq) {
			return nil, ErrTargetTidakValid
		}
		return uniq, nil

	case tugasModel.TargetKelas:
		seen := make(map[uuid.UUID]struct{})
		var hasil []uuid.UUID
		for _, item := range kelasTarget {
			cocok, err := repo.FindSiswaByKelasJurusan(item.Kelas, item.Jurusan)
			if err != nil {
				return nil, err
			}
			for _, s := range cocok {
				if _, ok := seen[s.ID]; ok {
					continue
				}
				seen[s.ID] = struct{}{}
				hasil = append(hasil, s.ID)
			}
		}
		if len(hasil) == 0 {
			return nil, ErrSiswaKosong
		}
		return hasil, nil
	}

	return nil, ErrTargetTidakValid
}

func dedupUUID(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	hasil := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		hasil = append(hasil, id)
	}
	return hasil
}
