package models

import "time"

// JamBooking menghubungkan sebuah Booking dengan slot jadwal yang dipesan.
// Tanggal didenormalisasi dari Booking supaya index unik (id_jadwal_meja,
// tanggal) bisa menjadi penjaga terakhir terhadap double-booking: dua request
// bersamaan untuk slot+tanggal yang sama akan gagal di index, bukan lolos
// dua-duanya.
type JamBooking struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	BookingID    uint       `gorm:"not null;index" json:"booking_id"`
	IDMeja       uint       `gorm:"not null" json:"id_meja"`
	IDJadwalMeja uint       `gorm:"not null;uniqueIndex:idx_jadwal_tanggal" json:"id_jadwal_meja"`
	Tanggal      time.Time  `gorm:"type:date;not null;uniqueIndex:idx_jadwal_tanggal" json:"tanggal"`
	JadwalMeja   JadwalMeja `gorm:"foreignKey:IDJadwalMeja" json:"jadwal_meja,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}
