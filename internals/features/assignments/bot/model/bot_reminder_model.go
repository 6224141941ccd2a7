package model

import (
	"time"

	"github.com/google/uuid"

	tugasModel "sekolahku_backend/internals/features/assignments/tugas/model"
)

// Status pengiriman reminder (diisi bot lewat webhook)
const (
	ReminderDiminta  = "diminta"  // dicatat guru/bot, belum tentu terkirim
	ReminderTerkirim = "terkirim" // bot konfirmasi sukses kirim
	ReminderGagal    = "gagal"    // bot konfirmasi gagal kirim
)

// BotReminderModel adalah log append-only "reminder pernah dikirim untuk
// penugasan X". Mencatat reminder TIDAK pernah mengubah status penugasan.
type BotReminderModel struct {
	BotReminderID          uuid.UUID `gorm:"column:bot_reminder_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bot_reminder_id"`
	BotReminderPenugasanID uuid.UUID `gorm:"column:bot_reminder_penugasan_id;type:uuid;not null;index" json:"bot_reminder_penugasan_id"`
	BotReminderStatus      string    `gorm:"column:bot_reminder_status;type:varchar(10);not null;default:'diminta'" json:"bot_reminder_status"`
	BotReminderDikirimPada time.Time `gorm:"column:bot_reminder_dikirim_pada;not null" json:"bot_reminder_dikirim_pada"`

	Penugasan *tugasModel.PenugasanModel `gorm:"foreignKey:BotReminderPenugasanID;references:PenugasanID" json:"penugasan,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName override nama tabel
func (BotReminderModel) TableName() string {
	return "bot_reminders"
}
