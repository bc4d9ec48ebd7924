package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fbService "sekolahku_backend/internals/features/integrations/facebook/service"
	"sekolahku_backend/internals/features/school/trial_bookings/dto"
	"sekolahku_backend/internals/features/school/trial_bookings/model"
	"sekolahku_backend/internals/features/school/trial_bookings/service"
	helper "sekolahku_backend/internals/helpers"
)

type TrialBookingController struct {
	DB *gorm.DB
}

func NewTrialBookingController(db *gorm.DB) *TrialBookingController {
	return &TrialBookingController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE (PUBLIK) =========================== */
// POST /api/public/trial-bookings
// Tanpa auth; dilindungi rate limiter khusus di route.
func (ctrl *TrialBookingController) CreateBooking(c *fiber.Ctx) error {
	var req dto.CreateTrialBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan booking")
	}

	return helper.JsonCreated(c, "Booking trial berhasil dibuat", fiber.Map{
		"trial_booking_id": m.TrialBookingID,
	})
}

/* =========================== UBAH STATUS =========================== */
// PUT /api/a/trial-bookings/:id/status
func (ctrl *TrialBookingController) UpdateStatus(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTrialBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.TrialBookingModel
	if err := db.Where("trial_booking_id = ?", bookingID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Booking tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data booking")
	}
	if m.TrialBookingStatus == model.TrialBookingStatusConverted {
		return fiber.NewError(fiber.StatusBadRequest, "Booking sudah dikonversi, status tidak bisa diubah")
	}

	updates := map[string]any{
		"trial_booking_status":     req.Status,
		"trial_booking_updated_at": time.Now(),
	}
	if req.Note != nil {
		updates["trial_booking_note"] = req.Note
	}
	if err := db.Model(&model.TrialBookingModel{}).
		Where("trial_booking_id = ?", m.TrialBookingID).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status booking")
	}

	m.TrialBookingStatus = req.Status
	return helper.JsonUpdated(c, "Status booking diperbarui", m)
}

/* =========================== KONVERSI =========================== */
// POST /api/a/trial-bookings/:id/convert
// Booking → parent + siswa + enrollment aktif (satu transaksi), lalu
// kirim event Lead ke Facebook Conversions (best-effort).
func (ctrl *TrialBookingController) ConvertBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ConvertTrialBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var booking model.TrialBookingModel
	if err := db.Where("trial_booking_id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Booking tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data booking")
	}

	now := time.Now()
	result, err := service.ConvertToEnrollment(db, &booking, req.ClassID, now)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengonversi booking")
	}

	// Event konversi ke Facebook: gagal hanya dilog
	tracked := false
	if client, err := fbService.NewClientFromSettings(db); err == nil {
		email := ""
		if booking.TrialBookingEmail != nil {
			email = *booking.TrialBookingEmail
		}
		ev := fbService.LeadEvent{
			EventName: "Lead",
			EventTime: now,
			Email:     email,
			Phone:     booking.TrialBookingPhone,
		}
		if err := client.SendLeadEvent(c.Context(), ev); err != nil {
			log.Printf("[FACEBOOK] lead event booking %s gagal: %v", booking.TrialBookingID, err)
		} else {
			tracked = true
		}
	} else if !errors.Is(err, fbService.ErrNotConfigured) {
		log.Printf("[FACEBOOK] init client gagal: %v", err)
	}

	return helper.JsonOK(c, "Booking berhasil dikonversi", fiber.Map{
		"student_id":    result.StudentID,
		"parent_id":     result.ParentID,
		"enrollment_id": result.EnrollmentID,
		"fb_tracked":    tracked,
	})
}

/* =========================== LIST =========================== */
// GET /api/a/trial-bookings?branch_id=&status=&page=&per_page=
func (ctrl *TrialBookingController) ListBookings(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.TrialBookingModel{})

	if branchID, err := uuid.Parse(strings.TrimSpace(c.Query("branch_id"))); err == nil {
		q = q.Where("trial_booking_branch_id = ?", branchID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("trial_booking_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.TrialBookingModel
	if err := q.Order("trial_booking_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data diterima", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
