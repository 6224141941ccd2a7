package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleGuru  = "guru"
	RoleSiswa = "siswa"
)

// Template pesan error role
const (
	ErrOnlyGuruCanAccess  = "❌ Hanya guru yang boleh mengakses fitur %s."
	ErrOnlySiswaCanAccess = "❌ Hanya siswa yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorGuru(feature string) string {
	return fmt.Sprintf(ErrOnlyGuruCanAccess, feature)
}

func RoleErrorSiswa(feature string) string {
	return fmt.Sprintf(ErrOnlySiswaCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	GuruOnly = []string{
		RoleGuru,
	}

	SiswaOnly = []string{
		RoleSiswa,
	}
)

// Opsi registrasi (kelas & jurusan) — dipakai register-options dan validasi DTO
var (
	KelasOptions   = []string{"X", "XI", "XII"}
	JurusanOptions = []string{"MPLB", "RPL", "PM", "TKJ", "AKL"}
)
