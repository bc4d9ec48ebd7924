package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/makeup/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

// LeaveRequest: payload izin self-service dari LIFF (ortu)
type LeaveRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	ClassID    uuid.UUID `json:"class_id" validate:"required"`
	ScheduleID uuid.UUID `json:"schedule_id" validate:"required"`
	Reason     string    `json:"reason" validate:"required,max=500"`
	Type       string    `json:"type" validate:"required,oneof=sick personal other"`
}

func (r *LeaveRequest) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
}

// CancelLeaveRequest: pembatalan izin (hanya status pending)
type CancelLeaveRequest struct {
	MakeupID   uuid.UUID `json:"makeup_id" validate:"required"`
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	ClassID    uuid.UUID `json:"class_id" validate:"required"`
	ScheduleID uuid.UUID `json:"schedule_id" validate:"required"`
}

// ScheduleMakeupRequest: staff menetapkan sesi pengganti
type ScheduleMakeupRequest struct {
	MakeupDate      string `json:"makeup_date" validate:"required"` // YYYY-MM-DD
	MakeupStartTime string `json:"makeup_start_time" validate:"required"`
	MakeupEndTime   string `json:"makeup_end_time" validate:"required"`
}

// Parse memvalidasi & mengubah payload ke tipe tanggal/jam DB
func (r *ScheduleMakeupRequest) Parse() (time.Time, dbtime.Tod, dbtime.Tod, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(r.MakeupDate))
	if err != nil {
		return time.Time{}, dbtime.Tod{}, dbtime.Tod{}, err
	}
	start, err := dbtime.Parse(r.MakeupStartTime)
	if err != nil {
		return time.Time{}, dbtime.Tod{}, dbtime.Tod{}, err
	}
	end, err := dbtime.Parse(r.MakeupEndTime)
	if err != nil {
		return time.Time{}, dbtime.Tod{}, dbtime.Tod{}, err
	}
	return date, start, end, nil
}

// DeleteMakeupRequest: penghapusan via admin (opsional audit)
type DeleteMakeupRequest struct {
	DeletedBy *string `json:"deleted_by,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

/* ===================== RESPONSES ===================== */

type MakeupResponse struct {
	MakeupID         uuid.UUID  `json:"makeup_id"`
	MakeupStudentID  uuid.UUID  `json:"makeup_student_id"`
	MakeupParentID   *uuid.UUID `json:"makeup_parent_id,omitempty"`
	MakeupClassID    uuid.UUID  `json:"makeup_class_id"`
	MakeupScheduleID uuid.UUID  `json:"makeup_schedule_id"`

	MakeupSource string `json:"makeup_source"`
	MakeupStatus string `json:"makeup_status"`
	MakeupReason string `json:"makeup_reason"`

	MakeupOriginalSessionNumber int       `json:"makeup_original_session_number"`
	MakeupOriginalDate          time.Time `json:"makeup_original_date"`

	MakeupDate      *time.Time  `json:"makeup_date,omitempty"`
	MakeupStartTime *dbtime.Tod `json:"makeup_start_time,omitempty"`
	MakeupEndTime   *dbtime.Tod `json:"makeup_end_time,omitempty"`

	MakeupCreatedAt time.Time `json:"makeup_created_at"`
}

func FromModel(m *model.MakeupModel) MakeupResponse {
	return MakeupResponse{
		MakeupID:                    m.MakeupID,
		MakeupStudentID:             m.MakeupStudentID,
		MakeupParentID:              m.MakeupParentID,
		MakeupClassID:               m.MakeupClassID,
		MakeupScheduleID:            m.MakeupScheduleID,
		MakeupSource:                m.MakeupSource,
		MakeupStatus:                m.MakeupStatus,
		MakeupReason:                m.MakeupReason,
		MakeupOriginalSessionNumber: m.MakeupOriginalSessionNumber,
		MakeupOriginalDate:          m.MakeupOriginalDate,
		MakeupDate:                  m.MakeupDate,
		MakeupStartTime:             m.MakeupStartTime,
		MakeupEndTime:               m.MakeupEndTime,
		MakeupCreatedAt:             m.MakeupCreatedAt,
	}
}
