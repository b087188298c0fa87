package models

import "time"

// QrisSingletonID adalah id tetap untuk baris QRIS tunggal; semua operasi
// upsert mengarah ke id ini.
const QrisSingletonID uint = 1

type Qris struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Judul     string     `gorm:"type:varchar(255);not null" json:"judul"`
	Foto      string     `gorm:"type:varchar(500)" json:"foto"`
	NamaFoto  string     `gorm:"type:varchar(255)" json:"nama_foto"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
