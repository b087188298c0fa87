package utils

import (
	"fmt"
	"time"
)

var hariIndonesia = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

var bulanIndonesia = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggalIndonesia memformat tanggal panjang gaya Indonesia,
// contoh: "Kamis, 03 Juli 2025".
func FormatTanggalIndonesia(t time.Time) string {
	return fmt.Sprintf("%s, %02d %s %d",
		hariIndonesia[int(t.Weekday())],
		t.Day(),
		bulanIndonesia[int(t.Month())-1],
		t.Year(),
	)
}
