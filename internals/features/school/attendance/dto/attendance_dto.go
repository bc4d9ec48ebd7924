package dto

import (
	"strings"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

// BulkAttendanceEntry: satu siswa dalam pengisian absensi per sesi
type BulkAttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late sick leave"`
	Note      *string   `json:"note" validate:"omitempty,max=500"`
	Feedback  *string   `json:"feedback" validate:"omitempty,max=1000"`
}

// BulkAttendanceRequest: pengisian absensi satu sesi sekaligus
type BulkAttendanceRequest struct {
	ScheduleID uuid.UUID             `json:"schedule_id" validate:"required"`
	Entries    []BulkAttendanceEntry `json:"entries" validate:"required,min=1,max=200,dive"`
}

func (r *BulkAttendanceRequest) Normalize() {
	for i := range r.Entries {
		r.Entries[i].Status = strings.ToLower(strings.TrimSpace(r.Entries[i].Status))
	}
}
