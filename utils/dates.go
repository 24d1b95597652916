// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

// FormatDateDDMMYYYY renders a date as the fixed 8-digit DDMMYYYY string
// used in invoice counter keys and invoice numbers.
func FormatDateDDMMYYYY(t time.Time) string {
	return fmt.Sprintf("%02d%02d%04d", t.Day(), int(t.Month()), t.Year())
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
