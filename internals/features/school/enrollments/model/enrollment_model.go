package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"
)

// EnrollmentModel merepresentasikan tabel `enrollments`
type EnrollmentModel struct {
	EnrollmentID        uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" gorm:"column:enrollment_student_id;type:uuid;not null;index"`
	EnrollmentClassID   uuid.UUID `json:"enrollment_class_id" gorm:"column:enrollment_class_id;type:uuid;not null;index"`

	EnrollmentStatus     string    `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(20);not null;default:'active'"`
	EnrollmentEnrolledAt time.Time `json:"enrollment_enrolled_at" gorm:"column:enrollment_enrolled_at;type:timestamptz;not null;default:now()"`
	EnrollmentNotes      *string   `json:"enrollment_notes,omitempty" gorm:"column:enrollment_notes;type:text"`

	EnrollmentCreatedAt time.Time      `json:"enrollment_created_at" gorm:"column:enrollment_created_at;type:timestamptz;not null;default:now()"`
	EnrollmentUpdatedAt time.Time      `json:"enrollment_updated_at" gorm:"column:enrollment_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt           gorm.DeletedAt `json:"enrollment_deleted_at,omitempty" gorm:"column:enrollment_deleted_at;type:timestamptz;index"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
