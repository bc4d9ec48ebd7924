package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel `students`
type StudentModel struct {
	StudentID       uuid.UUID  `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentBranchID uuid.UUID  `json:"student_branch_id" gorm:"column:student_branch_id;type:uuid;not null;index"`
	StudentParentID *uuid.UUID `json:"student_parent_id,omitempty" gorm:"column:student_parent_id;type:uuid;index"`

	StudentName       string     `json:"student_name" gorm:"column:student_name;type:varchar(120);not null"`
	StudentNickname   *string    `json:"student_nickname,omitempty" gorm:"column:student_nickname;type:varchar(60)"`
	StudentBirthdate  *time.Time `json:"student_birthdate,omitempty" gorm:"column:student_birthdate;type:date"`
	StudentGradeLevel *string    `json:"student_grade_level,omitempty" gorm:"column:student_grade_level;type:varchar(40)"`

	StudentIsActive bool `json:"student_is_active" gorm:"column:student_is_active;not null;default:true"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;default:now()"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;type:timestamptz;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
