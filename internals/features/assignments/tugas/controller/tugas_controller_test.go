package controller

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
)

func setupTugasApp(t *testing.T, guruID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	ctl := NewTugasController(gdb)

	app := fiber.New()
	// simulasi AuthMiddleware
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", guruID.String())
		c.Locals("userRole", constants.RoleGuru)
		return c.Next()
	})
	app.Post("/tugas", ctl.BuatTugas)
	return app, mock
}

func TestBuatTugas_RollbackSaatPenugasanGagal(t *testing.T) {
	guruID := uuid.New()
	siswaID := uuid.New()
	app, mock := setupTugasApp(t, guruID)

	// resolver menemukan siswa
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id IN ($1) AND role = $2`)).
		WithArgs(siswaID, "siswa").
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(siswaID.String(), "siswa"))

	// tugas tersimpan, lalu batch penugasan gagal: seluruh transaksi harus di-rollback
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tugas"`).
		WillReturnRows(sqlmock.NewRows([]string{"tugas_id"}).AddRow(uuid.New().String()))
	mock.ExpectQuery(`INSERT INTO "penugasan"`).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	mock.ExpectRollback()

	body := fmt.Sprintf(`{
		"tugas_judul": "Laporan Praktikum",
		"tugas_target": "siswa",
		"tugas_id_target": [%q],
		"tugas_tipe_pengumpulan": "link",
		"tugas_tampilkan_nilai": true
	}`, siswaID)
	req := httptest.NewRequest("POST", "/tugas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	// rollback terpanggil dan tidak ada statement lain setelahnya
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuatTugas_TargetTidakValidTidakMenyimpanApapun(t *testing.T) {
	guruID := uuid.New()
	siswaID := uuid.New()
	app, mock := setupTugasApp(t, guruID)

	// resolver tidak menemukan ID tersebut — tidak boleh ada INSERT sama sekali
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id IN ($1) AND role = $2`)).
		WithArgs(siswaID, "siswa").
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}))

	body := fmt.Sprintf(`{
		"tugas_judul": "Laporan Praktikum",
		"tugas_target": "siswa",
		"tugas_id_target": [%q],
		"tugas_tipe_pengumpulan": "link",
		"tugas_tampilkan_nilai": true
	}`, siswaID)
	req := httptest.NewRequest("POST", "/tugas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuatTugas_KelasKosongTidakMenyimpanApapun(t *testing.T) {
	guruID := uuid.New()
	app, mock := setupTugasApp(t, guruID)

	// target kelas valid secara bentuk tapi tidak menghasilkan siswa
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE role = $1 AND kelas = $2 AND jurusan = $3 ORDER BY created_at ASC`)).
		WithArgs("siswa", "XII", "RPL").
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}))

	body := `{
		"tugas_judul": "Laporan Praktikum",
		"tugas_target": "kelas",
		"tugas_id_target": [{"kelas":"XII","jurusan":"RPL"}],
		"tugas_tipe_pengumpulan": "langsung",
		"tugas_tampilkan_nilai": true
	}`
	req := httptest.NewRequest("POST", "/tugas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
