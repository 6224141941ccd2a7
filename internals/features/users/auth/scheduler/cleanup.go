package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"sekolahku_backend/internals/features/users/auth/model"

	"gorm.io/gorm"
)

// PurgeExpiredTokens menghapus PERMANEN entri blacklist yang expired
// sebelum batas. Unscoped supaya baris yang sudah soft-delete ikut
// terangkat — tanpa itu tabel membengkak selamanya.
func PurgeExpiredTokens(db *gorm.DB, batas time.Time) (int64, error) {
	res := db.Unscoped().
		Where("expired_at < ?", batas).
		Delete(&model.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

// StartBlacklistCleanupScheduler menjalankan pembersihan token_blacklist
// tiap 24 jam. TTL diambil dari TOKEN_BLACKLIST_TTL_DAYS (default 7 hari).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			batas := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			if dihapus, err := PurgeExpiredTokens(db, batas); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
			} else if dihapus > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus permanen", dihapus)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
