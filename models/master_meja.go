package models

import "time"

// MasterMeja merepresentasikan satu meja billiard beserta tarif per jam.
type MasterMeja struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	NamaMeja   string       `gorm:"type:varchar(255);not null" json:"nama_meja"`
	Foto       string       `gorm:"type:varchar(500)" json:"foto"`
	Deskripsi  string       `gorm:"type:text" json:"deskripsi"`
	Harga      float64      `gorm:"type:decimal(12,2);not null;default:0.00" json:"harga"`
	NoMeja     string       `gorm:"type:varchar(50)" json:"no_meja"`
	TipeMeja   string       `gorm:"type:varchar(100)" json:"tipe_meja"`
	IsActive   bool         `gorm:"not null;default:true" json:"is_active"`
	DeletedAt  *time.Time   `gorm:"index" json:"deleted_at,omitempty"`
	CreatedAt  time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null" json:"updated_at"`
	JadwalMeja []JadwalMeja `gorm:"foreignKey:MejaID" json:"jadwal_meja,omitempty"`
}
