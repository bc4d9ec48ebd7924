package dbtime

import "time"

const defaultTimezone = "Asia/Jakarta"

// AppLocation: zona waktu aplikasi.
// Fallback ke UTC kalau tzdata tidak tersedia di container.
func AppLocation() *time.Location {
	if loc, err := time.LoadLocation(defaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// StartOfDay: 00:00:00 di zona loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay: 23:59:59.999999999 di zona loc
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
