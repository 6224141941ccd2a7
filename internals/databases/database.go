package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	botModel "sekolahku_backend/internals/features/assignments/bot/model"
	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ DSN lengkap + statement_timeout, selaras dengan timeout HTTP
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateAll menyelaraskan skema: users, token_blacklist, tugas, penugasan, bot_reminders
func MigrateAll() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&tugasModel.TugasModel{},
		&tugasModel.PenugasanModel{},
		&botModel.BotReminderModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}
	log.Println("✅ Migrasi skema selesai.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
