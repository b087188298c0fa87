package models

import "time"

const SyaratSingletonID uint = 1

// SyaratKetentuan menyimpan teks syarat & ketentuan sebagai baris tunggal.
type SyaratKetentuan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Syarat    string    `gorm:"type:text;not null" json:"syarat"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
