package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatRupiah memformat nominal ke format Rupiah dengan pemisah ribuan,
// contoh: 150000 -> "Rp 150.000", 15000.5 -> "Rp 15.000,50".
func FormatRupiah(amount float64) string {
	integer := int64(math.Floor(amount))
	decimal := math.Round((amount-math.Floor(amount))*100) / 100

	digits := fmt.Sprintf("%d", integer)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	formatted := strings.Join(groups, ".")

	if decimal > 0 {
		return fmt.Sprintf("Rp %s,%02.0f", formatted, decimal*100)
	}
	return fmt.Sprintf("Rp %s", formatted)
}
