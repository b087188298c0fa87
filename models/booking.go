package models

import "time"

// Booking menyimpan satu pemesanan meja untuk satu tanggal. Harga adalah
// snapshot tarif per jam saat booking dibuat, DurasiJam disimpan sebagai teks
// mengikuti format lama ("3" atau "1.5").
type Booking struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	MejaID          uint              `gorm:"not null;index" json:"meja_id"`
	Meja            MasterMeja        `gorm:"foreignKey:MejaID" json:"meja,omitempty"`
	Tanggal         time.Time         `gorm:"type:date;not null;index" json:"tanggal"`
	Harga           float64           `gorm:"type:decimal(12,2);not null;default:0.00" json:"harga"`
	KodeBooking     string            `gorm:"type:varchar(30);uniqueIndex;not null" json:"kode_booking"`
	DurasiJam       string            `gorm:"type:varchar(10)" json:"durasi_jam"`
	TotalBayar      float64           `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_bayar"`
	Konfirmasi      bool              `gorm:"not null;default:false" json:"konfirmasi"`
	DeletedAt       *time.Time        `gorm:"index" json:"deleted_at,omitempty"`
	CreatedAt       time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null" json:"updated_at"`
	JamBooking      []JamBooking      `gorm:"foreignKey:BookingID" json:"jam_booking,omitempty"`
	BiodataBooking  []BiodataBooking  `gorm:"foreignKey:BookingID" json:"biodata_booking,omitempty"`
	BuktiPembayaran []BuktiPembayaran `gorm:"foreignKey:KodeBookingID;references:KodeBooking" json:"bukti_pembayaran,omitempty"`
}
