package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database.
// Guru dan siswa dibedakan lewat kolom role (bukan subclass) — kelas &
// jurusan hanya terisi untuk siswa.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string    `gorm:"size:50;unique;not null" json:"username"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Telepon  string    `gorm:"size:20;unique;not null" json:"telepon"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(10);not null" json:"role"`
	Kelas    *string   `gorm:"size:10" json:"kelas,omitempty"`
	Jurusan  *string   `gorm:"size:10" json:"jurusan,omitempty"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
