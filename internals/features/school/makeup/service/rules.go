package service

import (
	"fmt"
	"strings"
	"time"

	"sekolahku_backend/internals/helpers/dbtime"
)

/* =========================== ATURAN IZIN =========================== */

// IsRetroactive: izin/batal hanya boleh untuk sesi yang tanggalnya masih
// di depan. Sesi hari ini atau yang sudah lewat dianggap retroaktif.
func IsRetroactive(sessionDate, now time.Time, loc *time.Location) bool {
	return !dbtime.StartOfDay(sessionDate, loc).After(now.In(loc))
}

// IsDuplicateActiveMakeupErr: mapping unique violation dari partial unique
// index uq_makeup_active_per_schedule menjadi error bisnis "sudah pernah izin".
func IsDuplicateActiveMakeupErr(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "uq_makeup_active_per_schedule") ||
		(strings.Contains(low, "duplicate") && strings.Contains(low, "makeup"))
}

/* =========================== PESAN LINE =========================== */

// BuildScheduleMessage menyusun pesan notifikasi jadwal makeup untuk ortu.
func BuildScheduleMessage(studentName, className string, date time.Time, start, end dbtime.Tod) string {
	return fmt.Sprintf(
		"Jadwal kelas pengganti untuk %s (%s):\n📅 %s\n⏰ %s - %s\nSampai jumpa di kelas ya! 🙏",
		studentName,
		className,
		date.Format("02 Jan 2006"),
		start.Format("15:04"),
		end.Format("15:04"),
	)
}
