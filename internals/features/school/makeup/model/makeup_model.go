package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

const (
	MakeupStatusPending   = "pending"
	MakeupStatusScheduled = "scheduled"
	MakeupStatusCompleted = "completed"

	MakeupSourceParent = "parent"
	MakeupSourceStaff  = "staff"
)

// Batas gabungan (makeup terjadwal + absen) per siswa per kelas
const MakeupQuotaLimit = 4

// MakeupModel merepresentasikan tabel `makeup_classes`.
//
// Invariant "maksimal satu record aktif per (student, class, schedule)"
// dijaga oleh partial unique index di DB:
//
//	CREATE UNIQUE INDEX uq_makeup_active_per_schedule
//	ON makeup_classes (makeup_student_id, makeup_class_id, makeup_schedule_id)
//	WHERE makeup_status <> 'completed' AND makeup_deleted_at IS NULL;
//
// sehingga insert kedua gagal sebagai unique violation, bukan race.
type MakeupModel struct {
	MakeupID         uuid.UUID  `json:"makeup_id" gorm:"column:makeup_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MakeupStudentID  uuid.UUID  `json:"makeup_student_id" gorm:"column:makeup_student_id;type:uuid;not null;index"`
	MakeupParentID   *uuid.UUID `json:"makeup_parent_id,omitempty" gorm:"column:makeup_parent_id;type:uuid"`
	MakeupClassID    uuid.UUID  `json:"makeup_class_id" gorm:"column:makeup_class_id;type:uuid;not null;index"`
	MakeupScheduleID uuid.UUID  `json:"makeup_schedule_id" gorm:"column:makeup_schedule_id;type:uuid;not null"`

	MakeupSource string `json:"makeup_source" gorm:"column:makeup_source;type:varchar(20);not null"`
	MakeupStatus string `json:"makeup_status" gorm:"column:makeup_status;type:varchar(20);not null;default:'pending'"`
	MakeupReason string `json:"makeup_reason" gorm:"column:makeup_reason;type:text;not null"`

	// Sesi asal yang ditinggalkan
	MakeupOriginalSessionNumber int       `json:"makeup_original_session_number" gorm:"column:makeup_original_session_number;not null"`
	MakeupOriginalDate          time.Time `json:"makeup_original_date" gorm:"column:makeup_original_date;type:date;not null"`

	// Sesi pengganti (terisi saat staff menjadwalkan)
	MakeupDate      *time.Time  `json:"makeup_date,omitempty" gorm:"column:makeup_date;type:date"`
	MakeupStartTime *dbtime.Tod `json:"makeup_start_time,omitempty" gorm:"column:makeup_start_time;type:time"`
	MakeupEndTime   *dbtime.Tod `json:"makeup_end_time,omitempty" gorm:"column:makeup_end_time;type:time"`

	MakeupScheduledAt *time.Time `json:"makeup_scheduled_at,omitempty" gorm:"column:makeup_scheduled_at;type:timestamptz"`
	MakeupScheduledBy *string    `json:"makeup_scheduled_by,omitempty" gorm:"column:makeup_scheduled_by;type:varchar(120)"`

	MakeupCreatedAt time.Time      `json:"makeup_created_at" gorm:"column:makeup_created_at;type:timestamptz;not null;default:now()"`
	MakeupUpdatedAt time.Time      `json:"makeup_updated_at" gorm:"column:makeup_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt       gorm.DeletedAt `json:"makeup_deleted_at,omitempty" gorm:"column:makeup_deleted_at;type:timestamptz;index"`
}

func (MakeupModel) TableName() string {
	return "makeup_classes"
}
