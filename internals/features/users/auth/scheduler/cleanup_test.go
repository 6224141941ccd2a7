package scheduler

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gdb, mock
}

func TestPurgeExpiredTokens_HardDelete(t *testing.T) {
	gdb, mock := setupMockDB(t)

	batas := time.Now()
	// tanpa kolom deleted_at di WHERE: baris yang sudah soft-delete ikut dihapus
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "token_blacklist" WHERE expired_at < $1`)).
		WithArgs(batas).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	dihapus, err := PurgeExpiredTokens(gdb, batas)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dihapus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeExpiredTokens_DBError(t *testing.T) {
	gdb, mock := setupMockDB(t)

	batas := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "token_blacklist"`).
		WithArgs(batas).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := PurgeExpiredTokens(gdb, batas)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
