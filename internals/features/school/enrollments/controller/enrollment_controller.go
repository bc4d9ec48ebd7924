package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/features/school/enrollments/model"
	helper "sekolahku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validate = validator.New()

type createEnrollmentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	Notes     *string   `json:"notes" validate:"omitempty,max=500"`
}

/* =========================== CREATE =========================== */
// POST /api/a/enrollments
// Satu siswa maksimal satu enrollment aktif per kelas; counter kelas ikut naik.
func (ctrl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	var req createEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())
	now := time.Now()

	var result model.EnrollmentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var cls classModel.ClassModel
		if err := tx.
			Where("class_id = ? AND class_status IN ?", req.ClassID,
				[]string{classModel.ClassStatusPublished, classModel.ClassStatusStarted}).
			First(&cls).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan / tidak menerima pendaftaran")
			}
			return err
		}
		if cls.ClassMaxStudents > 0 && cls.ClassEnrolledCount >= cls.ClassMaxStudents {
			return fiber.NewError(fiber.StatusBadRequest, "Kelas sudah penuh")
		}

		var existing int64
		if err := tx.Model(&model.EnrollmentModel{}).
			Where(`enrollment_student_id = ? AND enrollment_class_id = ? AND enrollment_status = ?`,
				req.StudentID, req.ClassID, model.EnrollmentStatusActive).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Siswa sudah terdaftar aktif di kelas ini")
		}

		result = model.EnrollmentModel{
			EnrollmentStudentID:  req.StudentID,
			EnrollmentClassID:    req.ClassID,
			EnrollmentStatus:     model.EnrollmentStatusActive,
			EnrollmentEnrolledAt: now,
			EnrollmentNotes:      req.Notes,
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		return tx.Model(&classModel.ClassModel{}).
			Where("class_id = ?", req.ClassID).
			Update("class_enrolled_count", gorm.Expr("class_enrolled_count + 1")).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat enrollment")
	}

	return helper.JsonCreated(c, "Enrollment berhasil dibuat", result)
}

/* =========================== UBAH STATUS =========================== */
// PUT /api/a/enrollments/:id/status
// active → completed/dropped. Keluar dari active menurunkan counter kelas.
func (ctrl *EnrollmentController) UpdateEnrollmentStatus(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req struct {
		Status string  `json:"status" validate:"required,oneof=active completed dropped"`
		Notes  *string `json:"notes" validate:"omitempty,max=500"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.EnrollmentModel
	if err := db.Where("enrollment_id = ?", enrollmentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data enrollment")
	}
	if m.EnrollmentStatus == req.Status {
		return helper.JsonOK(c, "Status tidak berubah", m)
	}

	leftActive := m.EnrollmentStatus == model.EnrollmentStatusActive &&
		req.Status != model.EnrollmentStatusActive

	err = db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"enrollment_status":     req.Status,
			"enrollment_updated_at": time.Now(),
		}
		if req.Notes != nil {
			updates["enrollment_notes"] = req.Notes
		}
		if err := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_id = ?", m.EnrollmentID).
			Updates(updates).Error; err != nil {
			return err
		}
		if leftActive {
			return tx.Model(&classModel.ClassModel{}).
				Where("class_id = ? AND class_enrolled_count > 0", m.EnrollmentClassID).
				Update("class_enrolled_count", gorm.Expr("class_enrolled_count - 1")).Error
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status enrollment")
	}

	m.EnrollmentStatus = req.Status
	return helper.JsonUpdated(c, "Status enrollment diperbarui", m)
}

/* =========================== LIST =========================== */
// GET /api/a/enrollments?class_id=&student_id=&status=&page=&per_page=
func (ctrl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.EnrollmentModel{})

	if classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id"))); err == nil {
		q = q.Where("enrollment_class_id = ?", classID)
	}
	if studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id"))); err == nil {
		q = q.Where("enrollment_student_id = ?", studentID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("enrollment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.EnrollmentModel
	if err := q.Order("enrollment_enrolled_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data diterima", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
