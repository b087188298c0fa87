package models

import "time"

// Tipe entri kalender penutupan. Satu tanggal TUTUP bisa dibuka kembali oleh
// entri BUKA yang menunjuk entri tutupnya lewat ReferenceID.
const (
	ClosedTypeTutup = "TUTUP"
	ClosedTypeBuka  = "BUKA"
)

type Closed struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Type        string    `gorm:"type:varchar(10);not null" json:"type"`
	Reason      string    `gorm:"type:varchar(255);not null" json:"reason"`
	ReferenceID *uint     `gorm:"index" json:"reference_id,omitempty"`
	Reference   *Closed   `gorm:"foreignKey:ReferenceID" json:"reference,omitempty"`
	OpenedBy    []Closed  `gorm:"foreignKey:ReferenceID" json:"opened_by,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
