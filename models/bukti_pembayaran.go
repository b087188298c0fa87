package models

import "time"

// BuktiPembayaran adalah foto bukti transfer yang dilampirkan ke booking
// lewat kode booking, bukan id numerik.
type BuktiPembayaran struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Foto          string     `gorm:"type:varchar(500);not null" json:"foto"`
	NamaFoto      string     `gorm:"type:varchar(255)" json:"nama_foto"`
	KodeBookingID string     `gorm:"type:varchar(30);not null;index" json:"kode_booking_id"`
	DeletedAt     *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}
