package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TrialBookingStatusNew       = "new"
	TrialBookingStatusConfirmed = "confirmed"
	TrialBookingStatusAttended  = "attended"
	TrialBookingStatusConverted = "converted"
	TrialBookingStatusCancelled = "cancelled"
)

// TrialBookingModel merepresentasikan tabel `trial_bookings`
// (lead dari form publik / LINE, bisa dikonversi jadi siswa + enrollment)
type TrialBookingModel struct {
	TrialBookingID       uuid.UUID `json:"trial_booking_id" gorm:"column:trial_booking_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TrialBookingBranchID uuid.UUID `json:"trial_booking_branch_id" gorm:"column:trial_booking_branch_id;type:uuid;not null;index"`

	TrialBookingChildName  string  `json:"trial_booking_child_name" gorm:"column:trial_booking_child_name;type:varchar(120);not null"`
	TrialBookingParentName string  `json:"trial_booking_parent_name" gorm:"column:trial_booking_parent_name;type:varchar(120);not null"`
	TrialBookingPhone      string  `json:"trial_booking_phone" gorm:"column:trial_booking_phone;type:varchar(30);not null"`
	TrialBookingEmail      *string `json:"trial_booking_email,omitempty" gorm:"column:trial_booking_email;type:varchar(160)"`
	TrialBookingLineUserID *string `json:"trial_booking_line_user_id,omitempty" gorm:"column:trial_booking_line_user_id;type:varchar(64)"`

	TrialBookingClassID *uuid.UUID `json:"trial_booking_class_id,omitempty" gorm:"column:trial_booking_class_id;type:uuid"`
	TrialBookingDate    *time.Time `json:"trial_booking_date,omitempty" gorm:"column:trial_booking_date;type:date"`
	TrialBookingNote    *string    `json:"trial_booking_note,omitempty" gorm:"column:trial_booking_note;type:text"`

	TrialBookingStatus string `json:"trial_booking_status" gorm:"column:trial_booking_status;type:varchar(20);not null;default:'new'"`

	// Terisi setelah konversi jadi siswa
	TrialBookingConvertedStudentID *uuid.UUID `json:"trial_booking_converted_student_id,omitempty" gorm:"column:trial_booking_converted_student_id;type:uuid"`
	TrialBookingConvertedAt        *time.Time `json:"trial_booking_converted_at,omitempty" gorm:"column:trial_booking_converted_at;type:timestamptz"`

	TrialBookingCreatedAt time.Time      `json:"trial_booking_created_at" gorm:"column:trial_booking_created_at;type:timestamptz;not null;default:now()"`
	TrialBookingUpdatedAt time.Time      `json:"trial_booking_updated_at" gorm:"column:trial_booking_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt             gorm.DeletedAt `json:"trial_booking_deleted_at,omitempty" gorm:"column:trial_booking_deleted_at;type:timestamptz;index"`
}

func (TrialBookingModel) TableName() string {
	return "trial_bookings"
}
