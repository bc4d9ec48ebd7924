package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	scheduleModel "sekolahku_backend/internals/features/school/class_schedules/model"
	makeupModel "sekolahku_backend/internals/features/school/makeup/model"
)

// UpsertAttendance menulis satu baris kehadiran per (schedule, student).
// Baris yang sudah ada ditimpa (ON CONFLICT), bukan delete-then-insert.
func UpsertAttendance(db *gorm.DB, rec *attendanceModel.AttendanceModel) error {
	rec.AttendanceUpdatedAt = time.Now()
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_schedule_id"},
			{Name: "attendance_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status",
			"attendance_note",
			"attendance_feedback",
			"attendance_checked_at",
			"attendance_checked_by",
			"attendance_updated_at",
		}),
	}).Create(rec).Error
}

// SyncAbsentForLeave: side effect best-effort saat izin dibuat.
// Kegagalan hanya dilog, tidak membatalkan record makeup (lihat controller).
func SyncAbsentForLeave(db *gorm.DB, scheduleID, studentID uuid.UUID, note string) error {
	now := time.Now()
	sysBy := "system"
	rec := &attendanceModel.AttendanceModel{
		AttendanceScheduleID: scheduleID,
		AttendanceStudentID:  studentID,
		AttendanceStatus:     attendanceModel.AttendanceStatusAbsent,
		AttendanceNote:       &note,
		AttendanceCheckedAt:  &now,
		AttendanceCheckedBy:  &sysBy,
	}
	return UpsertAttendance(db, rec)
}

// DeleteForSchedule: hapus baris kehadiran satu siswa pada satu sesi
// (dipakai saat izin dibatalkan / makeup dihapus)
func DeleteForSchedule(db *gorm.DB, scheduleID, studentID uuid.UUID) error {
	return db.
		Where("attendance_schedule_id = ? AND attendance_student_id = ?", scheduleID, studentID).
		Delete(&attendanceModel.AttendanceModel{}).Error
}

// PromoteMakeupOnPresent: kalau siswa hadir di sesi yang merupakan jadwal
// makeup-nya (tanggal sama, kelas sama, status scheduled), makeup otomatis
// naik ke completed.
func PromoteMakeupOnPresent(db *gorm.DB, scheduleID, studentID uuid.UUID) {
	var sched scheduleModel.ClassScheduleModel
	if err := db.
		Where("class_schedule_id = ?", scheduleID).
		First(&sched).Error; err != nil {
		log.Printf("[ATTENDANCE] promote makeup: sesi %s tidak ditemukan: %v", scheduleID, err)
		return
	}

	res := db.Model(&makeupModel.MakeupModel{}).
		Where(`makeup_student_id = ?
			AND makeup_class_id = ?
			AND makeup_status = ?
			AND makeup_date = ?`,
			studentID, sched.ClassScheduleClassID,
			makeupModel.MakeupStatusScheduled, sched.ClassScheduleSessionDate).
		Updates(map[string]any{
			"makeup_status":     makeupModel.MakeupStatusCompleted,
			"makeup_updated_at": time.Now(),
		})
	if res.Error != nil {
		log.Printf("[ATTENDANCE] promote makeup gagal: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[ATTENDANCE] %d makeup siswa %s selesai (hadir di sesi pengganti)", res.RowsAffected, studentID)
	}
}
