package models

import "time"

// SettingWeb adalah konfigurasi tampilan situs; efektif satu baris, disimpan
// dan diperbarui lewat upsert pada baris pertama. Kolom daftar (telepon, menu,
// sosial media) disimpan sebagai JSON string array.
type SettingWeb struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	LogoURL        string    `gorm:"type:varchar(500);not null" json:"logo_url"`
	Deskripsi      string    `gorm:"type:text" json:"deskripsi"`
	Alamat         string    `gorm:"type:varchar(255)" json:"alamat"`
	KodePos        string    `gorm:"type:varchar(10)" json:"kode_pos"`
	Telepon        string    `gorm:"type:text" json:"telepon"`
	Faks           string    `gorm:"type:varchar(30)" json:"faks"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	JamOperasional string    `gorm:"type:varchar(100)" json:"jam_operasional"`
	MenuQuick      string    `gorm:"type:text" json:"menu_quick"`
	MenuTentang    string    `gorm:"type:text" json:"menu_tentang"`
	MenuKontak     string    `gorm:"type:text" json:"menu_kontak"`
	SosialMedia    string    `gorm:"type:text" json:"sosial_media"`
	Copyright      string    `gorm:"type:varchar(255)" json:"copyright"`
	Developer      string    `gorm:"type:varchar(255)" json:"developer"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
