package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/class_schedules/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type CreateScheduleRequest struct {
	ClassID       uuid.UUID `json:"class_id" validate:"required"`
	SessionNumber int       `json:"session_number" validate:"required,gte=1"`
	SessionDate   string    `json:"session_date" validate:"required"` // YYYY-MM-DD
	StartTime     string    `json:"start_time" validate:"required"`   // HH:MM
	EndTime       string    `json:"end_time" validate:"required"`
	Note          *string   `json:"note" validate:"omitempty,max=500"`
}

func (r *CreateScheduleRequest) ToModel() (*model.ClassScheduleModel, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(r.SessionDate))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "session_date tidak valid (YYYY-MM-DD)")
	}
	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "start_time tidak valid (HH:MM)")
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "end_time tidak valid (HH:MM)")
	}
	if !end.Time.After(start.Time) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "end_time harus setelah start_time")
	}
	return &model.ClassScheduleModel{
		ClassScheduleClassID:       r.ClassID,
		ClassScheduleSessionNumber: r.SessionNumber,
		ClassScheduleSessionDate:   date,
		ClassScheduleStartTime:     start,
		ClassScheduleEndTime:       end,
		ClassScheduleStatus:        model.ClassScheduleStatusScheduled,
		ClassScheduleNote:          r.Note,
	}, nil
}

// UpdateScheduleRequest: PATCH parsial. Perubahan session_date membuat
// baris riwayat reschedule (lihat controller).
type UpdateScheduleRequest struct {
	SessionDate *string `json:"session_date" validate:"omitempty"`
	StartTime   *string `json:"start_time" validate:"omitempty"`
	EndTime     *string `json:"end_time" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=scheduled rescheduled cancelled completed"`
	Note        *string `json:"note" validate:"omitempty,max=500"`
	Reason      *string `json:"reason" validate:"omitempty,max=500"` // alasan reschedule (audit)
}
