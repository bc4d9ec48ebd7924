package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusSick    = "sick"
	AttendanceStatusLeave   = "leave"
)

// AttendanceModel merepresentasikan tabel `attendance`.
// Satu baris per (schedule, student); ditulis dengan upsert ON CONFLICT.
type AttendanceModel struct {
	AttendanceID         uuid.UUID `json:"attendance_id" gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceScheduleID uuid.UUID `json:"attendance_schedule_id" gorm:"column:attendance_schedule_id;type:uuid;not null;uniqueIndex:uq_attendance_schedule_student"`
	AttendanceStudentID  uuid.UUID `json:"attendance_student_id" gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_schedule_student"`

	AttendanceStatus   string  `json:"attendance_status" gorm:"column:attendance_status;type:varchar(20);not null"`
	AttendanceNote     *string `json:"attendance_note,omitempty" gorm:"column:attendance_note;type:text"`
	AttendanceFeedback *string `json:"attendance_feedback,omitempty" gorm:"column:attendance_feedback;type:text"`

	AttendanceCheckedAt *time.Time `json:"attendance_checked_at,omitempty" gorm:"column:attendance_checked_at;type:timestamptz"`
	AttendanceCheckedBy *string    `json:"attendance_checked_by,omitempty" gorm:"column:attendance_checked_by;type:varchar(120)"`

	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;type:timestamptz;not null;default:now()"`
	AttendanceUpdatedAt time.Time `json:"attendance_updated_at" gorm:"column:attendance_updated_at;type:timestamptz;not null;default:now()"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
