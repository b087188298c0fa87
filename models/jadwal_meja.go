package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status jadwal yang tersimpan di kolom status. Status "Booked"/"Tersedia"
// yang muncul di listing dihitung ulang dari JamBooking saat dibaca, bukan
// dari kolom ini.
const (
	JadwalStatusAvailable   = "available"
	JadwalStatusBooked      = "booked"
	JadwalStatusUnavailable = "unavailable"
)

// JadwalMeja adalah satu slot waktu tetap milik satu meja.
// StartTime/EndTime disimpan sebagai string "HH:MM".
type JadwalMeja struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	MejaID    uint       `gorm:"not null;index" json:"meja_id"`
	Meja      MasterMeja `gorm:"foreignKey:MejaID" json:"meja,omitempty"`
	StartTime string     `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string     `gorm:"type:varchar(5);not null" json:"end_time"`
	Status    string     `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

// ParseClock mengubah "HH:MM" menjadi menit sejak tengah malam.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("format jam tidak valid: %s", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("format jam tidak valid: %s", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("format jam tidak valid: %s", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("jam di luar rentang: %s", clock)
	}
	return hour*60 + minute, nil
}

// DurationHours menghitung durasi slot dalam jam (komponen tanggal diabaikan).
func (j *JadwalMeja) DurationHours() (float64, error) {
	start, err := ParseClock(j.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(j.EndTime)
	if err != nil {
		return 0, err
	}
	return float64(end-start) / 60.0, nil
}

// TimeRange mengembalikan rentang waktu slot dalam format tampilan.
func (j *JadwalMeja) TimeRange() string {
	return j.StartTime + " - " + j.EndTime
}
