package service

import (
	"gorm.io/gorm"

	"github.com/google/uuid"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	makeupModel "sekolahku_backend/internals/features/school/makeup/model"
)

/* =========================== KUOTA =========================== */

// QuotaBreakdown: rincian kuota izin per (siswa, kelas).
// kuota = jumlah makeup terjadwal (inisiatif ortu) + jumlah absen di kelas itu.
type QuotaBreakdown struct {
	ScheduledMakeups int64 `json:"scheduled_makeups"`
	AbsentSessions   int64 `json:"absent_sessions"`
	Limit            int64 `json:"limit"`
}

func (q QuotaBreakdown) Used() int64 {
	return q.ScheduledMakeups + q.AbsentSessions
}

// Exceeded: true kalau kuota sudah penuh (request berikutnya ditolak)
func (q QuotaBreakdown) Exceeded() bool {
	return q.Used() >= q.Limit
}

// CountQuota menghitung kuota terpakai siswa di satu kelas.
func CountQuota(db *gorm.DB, studentID, classID uuid.UUID) (QuotaBreakdown, error) {
	q := QuotaBreakdown{Limit: makeupModel.MakeupQuotaLimit}

	// 1) Makeup berstatus scheduled yang berasal dari kanal ortu
	if err := db.Model(&makeupModel.MakeupModel{}).
		Where(`makeup_student_id = ?
			AND makeup_class_id = ?
			AND makeup_status = ?
			AND makeup_source = ?`,
			studentID, classID, makeupModel.MakeupStatusScheduled, makeupModel.MakeupSourceParent).
		Count(&q.ScheduledMakeups).Error; err != nil {
		return q, err
	}

	// 2) Kehadiran "absent" pada sesi-sesi kelas yang sama
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Joins(`JOIN class_schedules
			ON class_schedules.class_schedule_id = attendance.attendance_schedule_id`).
		Where(`attendance.attendance_student_id = ?
			AND class_schedules.class_schedule_class_id = ?
			AND attendance.attendance_status = ?
			AND class_schedules.class_schedule_deleted_at IS NULL`,
			studentID, classID, attendanceModel.AttendanceStatusAbsent).
		Count(&q.AbsentSessions).Error; err != nil {
		return q, err
	}

	return q, nil
}
