package models

import "time"

// BiodataBooking menyimpan data pemesan untuk satu booking.
type BiodataBooking struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Nama      string     `gorm:"type:varchar(255);not null" json:"nama"`
	NoTelp    string     `gorm:"type:varchar(30);not null" json:"no_telp"`
	Alamat    string     `gorm:"type:text;not null" json:"alamat"`
	Email     string     `gorm:"type:varchar(255)" json:"email"`
	BookingID uint       `gorm:"not null;index" json:"booking_id"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
