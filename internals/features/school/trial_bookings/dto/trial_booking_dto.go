package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/trial_bookings/model"
)

/* ===================== REQUESTS ===================== */

// CreateTrialBookingRequest: form publik (landing page / LIFF)
type CreateTrialBookingRequest struct {
	BranchID   uuid.UUID  `json:"branch_id" validate:"required"`
	ChildName  string     `json:"child_name" validate:"required,max=120"`
	ParentName string     `json:"parent_name" validate:"required,max=120"`
	Phone      string     `json:"phone" validate:"required,max=30"`
	Email      *string    `json:"email" validate:"omitempty,email,max=160"`
	LineUserID *string    `json:"line_user_id" validate:"omitempty,max=64"`
	ClassID    *uuid.UUID `json:"class_id"`
	Date       *string    `json:"date" validate:"omitempty"` // YYYY-MM-DD
	Note       *string    `json:"note" validate:"omitempty,max=500"`
}

func (r *CreateTrialBookingRequest) Normalize() {
	r.ChildName = strings.TrimSpace(r.ChildName)
	r.ParentName = strings.TrimSpace(r.ParentName)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *CreateTrialBookingRequest) ToModel() (*model.TrialBookingModel, error) {
	var date *time.Time
	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.Date))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "date tidak valid (YYYY-MM-DD)")
		}
		date = &d
	}
	return &model.TrialBookingModel{
		TrialBookingBranchID:   r.BranchID,
		TrialBookingChildName:  r.ChildName,
		TrialBookingParentName: r.ParentName,
		TrialBookingPhone:      r.Phone,
		TrialBookingEmail:      r.Email,
		TrialBookingLineUserID: r.LineUserID,
		TrialBookingClassID:    r.ClassID,
		TrialBookingDate:       date,
		TrialBookingNote:       r.Note,
		TrialBookingStatus:     model.TrialBookingStatusNew,
	}, nil
}

// UpdateTrialBookingStatusRequest: perubahan status manual oleh staff
// (converted hanya lewat endpoint convert)
type UpdateTrialBookingStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=new confirmed attended cancelled"`
	Note   *string `json:"note" validate:"omitempty,max=500"`
}

// ConvertTrialBookingRequest: kelas tujuan konversi
type ConvertTrialBookingRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
}
