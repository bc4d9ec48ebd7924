// models/classes_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status kelas. Transisi otomatis (cron) hanya maju:
// published → started → completed. draft→published & cancelled = manual.
const (
	ClassStatusDraft     = "draft"
	ClassStatusPublished = "published"
	ClassStatusStarted   = "started"
	ClassStatusCompleted = "completed"
	ClassStatusCancelled = "cancelled"
)

// ClassModel merepresentasikan tabel `classes`
type ClassModel struct {
	// PK & cabang
	ClassID       uuid.UUID `json:"class_id"        gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassBranchID uuid.UUID `json:"class_branch_id" gorm:"column:class_branch_id;type:uuid;not null"`

	// Identitas
	ClassName        string  `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`
	ClassCode        *string `json:"class_code,omitempty" gorm:"column:class_code;type:varchar(40)"`
	ClassSubject     *string `json:"class_subject,omitempty" gorm:"column:class_subject;type:varchar(80)"`
	ClassTeacherName *string `json:"class_teacher_name,omitempty" gorm:"column:class_teacher_name;type:varchar(120)"`

	// Status & jadwal
	ClassStatus    string    `json:"class_status" gorm:"column:class_status;type:varchar(20);not null;default:'draft'"`
	ClassStartDate time.Time `json:"class_start_date" gorm:"column:class_start_date;type:date;not null"`
	ClassEndDate   time.Time `json:"class_end_date" gorm:"column:class_end_date;type:date;not null"`

	// Kapasitas
	ClassTotalSessions int `json:"class_total_sessions" gorm:"column:class_total_sessions;not null;default:0"`
	ClassMaxStudents   int `json:"class_max_students" gorm:"column:class_max_students;not null;default:0"`
	ClassEnrolledCount int `json:"class_enrolled_count" gorm:"column:class_enrolled_count;not null;default:0"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;default:now()"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt      gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;type:timestamptz;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
