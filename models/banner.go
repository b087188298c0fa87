package models

import "time"

type Banner struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Judul     string     `gorm:"type:varchar(255);not null" json:"judul"`
	Foto      string     `gorm:"type:varchar(500);not null" json:"foto"`
	NamaFoto  string     `gorm:"type:varchar(255);not null" json:"nama_foto"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
