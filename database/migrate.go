package database

import (
	"github.com/dongans/billiard-app/models"
	"gorm.io/gorm"
)

// Migrate menjalankan AutoMigrate untuk seluruh entity. Index unik komposit
// (id_jadwal_meja, tanggal) pada jam_bookings dibuat lewat tag model dan
// menjadi penjaga double-booking di level database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MasterMeja{},
		&models.JadwalMeja{},
		&models.Booking{},
		&models.JamBooking{},
		&models.BiodataBooking{},
		&models.BuktiPembayaran{},
		&models.Closed{},
		&models.Banner{},
		&models.Qris{},
		&models.SettingWeb{},
		&models.SyaratKetentuan{},
		&models.ActivityLog{},
	)
}
