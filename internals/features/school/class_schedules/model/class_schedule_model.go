package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

const (
	ClassScheduleStatusScheduled   = "scheduled"
	ClassScheduleStatusRescheduled = "rescheduled"
	ClassScheduleStatusCancelled   = "cancelled"
	ClassScheduleStatusCompleted   = "completed"
)

// ClassScheduleModel merepresentasikan tabel `class_schedules`
// (satu baris = satu sesi terjadwal dari sebuah kelas)
type ClassScheduleModel struct {
	ClassScheduleID      uuid.UUID `json:"class_schedule_id" gorm:"column:class_schedule_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassScheduleClassID uuid.UUID `json:"class_schedule_class_id" gorm:"column:class_schedule_class_id;type:uuid;not null;index"`

	ClassScheduleSessionNumber int        `json:"class_schedule_session_number" gorm:"column:class_schedule_session_number;not null"`
	ClassScheduleSessionDate   time.Time  `json:"class_schedule_session_date" gorm:"column:class_schedule_session_date;type:date;not null"`
	ClassScheduleStartTime     dbtime.Tod `json:"class_schedule_start_time" gorm:"column:class_schedule_start_time;type:time;not null"`
	ClassScheduleEndTime       dbtime.Tod `json:"class_schedule_end_time" gorm:"column:class_schedule_end_time;type:time;not null"`

	ClassScheduleStatus string  `json:"class_schedule_status" gorm:"column:class_schedule_status;type:varchar(20);not null;default:'scheduled'"`
	ClassScheduleNote   *string `json:"class_schedule_note,omitempty" gorm:"column:class_schedule_note;type:text"`

	ClassScheduleCreatedAt time.Time      `json:"class_schedule_created_at" gorm:"column:class_schedule_created_at;type:timestamptz;not null;default:now()"`
	ClassScheduleUpdatedAt time.Time      `json:"class_schedule_updated_at" gorm:"column:class_schedule_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt              gorm.DeletedAt `json:"class_schedule_deleted_at,omitempty" gorm:"column:class_schedule_deleted_at;type:timestamptz;index"`
}

func (ClassScheduleModel) TableName() string {
	return "class_schedules"
}

// ClassScheduleRescheduleModel: riwayat pemindahan jadwal sesi kelas.
// Dicatat hanya untuk reschedule sesi kelas, bukan untuk penjadwalan makeup.
type ClassScheduleRescheduleModel struct {
	RescheduleID         uuid.UUID `json:"reschedule_id" gorm:"column:reschedule_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RescheduleScheduleID uuid.UUID `json:"reschedule_schedule_id" gorm:"column:reschedule_schedule_id;type:uuid;not null;index"`

	RescheduleOldDate time.Time `json:"reschedule_old_date" gorm:"column:reschedule_old_date;type:date;not null"`
	RescheduleNewDate time.Time `json:"reschedule_new_date" gorm:"column:reschedule_new_date;type:date;not null"`
	RescheduleReason  *string   `json:"reschedule_reason,omitempty" gorm:"column:reschedule_reason;type:text"`
	RescheduleBy      *string   `json:"reschedule_by,omitempty" gorm:"column:reschedule_by;type:varchar(120)"`

	RescheduleCreatedAt time.Time `json:"reschedule_created_at" gorm:"column:reschedule_created_at;type:timestamptz;not null;default:now()"`
}

func (ClassScheduleRescheduleModel) TableName() string {
	return "class_schedule_reschedules"
}
