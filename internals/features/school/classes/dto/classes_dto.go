package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/classes/model"
)

/* ===================== REQUESTS ===================== */

type CreateClassRequest struct {
	ClassBranchID uuid.UUID `json:"class_branch_id" validate:"required"`

	ClassName        string  `json:"class_name" validate:"required,max=120"`
	ClassCode        *string `json:"class_code" validate:"omitempty,max=40"`
	ClassSubject     *string `json:"class_subject" validate:"omitempty,max=80"`
	ClassTeacherName *string `json:"class_teacher_name" validate:"omitempty,max=120"`

	ClassStartDate string `json:"class_start_date" validate:"required"` // YYYY-MM-DD
	ClassEndDate   string `json:"class_end_date" validate:"required"`   // YYYY-MM-DD

	ClassTotalSessions int `json:"class_total_sessions" validate:"gte=0"`
	ClassMaxStudents   int `json:"class_max_students" validate:"gte=0"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.ClassStartDate = strings.TrimSpace(r.ClassStartDate)
	r.ClassEndDate = strings.TrimSpace(r.ClassEndDate)
}

func (r *CreateClassRequest) ToModel() (*model.ClassModel, error) {
	start, err := time.Parse("2006-01-02", r.ClassStartDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "class_start_date tidak valid (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", r.ClassEndDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "class_end_date tidak valid (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "class_end_date harus setelah class_start_date")
	}
	return &model.ClassModel{
		ClassBranchID:      r.ClassBranchID,
		ClassName:          r.ClassName,
		ClassCode:          r.ClassCode,
		ClassSubject:       r.ClassSubject,
		ClassTeacherName:   r.ClassTeacherName,
		ClassStatus:        model.ClassStatusDraft,
		ClassStartDate:     start,
		ClassEndDate:       end,
		ClassTotalSessions: r.ClassTotalSessions,
		ClassMaxStudents:   r.ClassMaxStudents,
	}, nil
}

// UpdateClassRequest: PATCH parsial. Status hanya boleh diubah manual ke
// published/cancelled; transisi otomatis milik cron.
type UpdateClassRequest struct {
	ClassName        *string `json:"class_name" validate:"omitempty,max=120"`
	ClassCode        *string `json:"class_code" validate:"omitempty,max=40"`
	ClassSubject     *string `json:"class_subject" validate:"omitempty,max=80"`
	ClassTeacherName *string `json:"class_teacher_name" validate:"omitempty,max=120"`

	ClassStatus    *string `json:"class_status" validate:"omitempty,oneof=draft published started completed cancelled"`
	ClassStartDate *string `json:"class_start_date" validate:"omitempty"`
	ClassEndDate   *string `json:"class_end_date" validate:"omitempty"`

	ClassTotalSessions *int `json:"class_total_sessions" validate:"omitempty,gte=0"`
	ClassMaxStudents   *int `json:"class_max_students" validate:"omitempty,gte=0"`
}

func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel) error {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassCode != nil {
		m.ClassCode = r.ClassCode
	}
	if r.ClassSubject != nil {
		m.ClassSubject = r.ClassSubject
	}
	if r.ClassTeacherName != nil {
		m.ClassTeacherName = r.ClassTeacherName
	}
	if r.ClassStatus != nil {
		m.ClassStatus = *r.ClassStatus
	}
	if r.ClassStartDate != nil {
		start, err := time.Parse("2006-01-02", strings.TrimSpace(*r.ClassStartDate))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_start_date tidak valid (YYYY-MM-DD)")
		}
		m.ClassStartDate = start
	}
	if r.ClassEndDate != nil {
		end, err := time.Parse("2006-01-02", strings.TrimSpace(*r.ClassEndDate))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_end_date tidak valid (YYYY-MM-DD)")
		}
		m.ClassEndDate = end
	}
	if r.ClassTotalSessions != nil {
		m.ClassTotalSessions = *r.ClassTotalSessions
	}
	if r.ClassMaxStudents != nil {
		m.ClassMaxStudents = *r.ClassMaxStudents
	}
	m.ClassUpdatedAt = time.Now()
	return nil
}
