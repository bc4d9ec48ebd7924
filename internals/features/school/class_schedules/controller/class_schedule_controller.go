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

	"sekolahku_backend/internals/features/school/class_schedules/dto"
	"sekolahku_backend/internals/features/school/class_schedules/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

type ClassScheduleController struct {
	DB *gorm.DB
}

func NewClassScheduleController(db *gorm.DB) *ClassScheduleController {
	return &ClassScheduleController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/a/class-schedules
func (ctrl *ClassScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return err
	}

	db := ctrl.DB.WithContext(c.Context())

	var dup int64
	if err := db.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_class_id = ? AND class_schedule_session_number = ?",
			req.ClassID, req.SessionNumber).
		Count(&dup).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa sesi")
	}
	if dup > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor sesi sudah dipakai di kelas ini")
	}

	if err := db.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sesi")
	}
	return helper.JsonCreated(c, "Sesi berhasil dibuat", m)
}

/* =========================== UPDATE / RESCHEDULE =========================== */
// PUT /api/a/class-schedules/:id
// Perubahan tanggal dicatat ke riwayat reschedule dan status baris jadi
// rescheduled (kecuali request menetapkan status lain secara eksplisit).
func (ctrl *ClassScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.ClassScheduleModel
	if err := db.Where("class_schedule_id = ?", scheduleID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data sesi")
	}

	now := time.Now()
	oldDate := m.ClassScheduleSessionDate
	dateChanged := false

	if req.SessionDate != nil {
		newDate, err := time.Parse("2006-01-02", strings.TrimSpace(*req.SessionDate))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "session_date tidak valid (YYYY-MM-DD)")
		}
		if !newDate.Equal(oldDate) {
			m.ClassScheduleSessionDate = newDate
			dateChanged = true
		}
	}
	if req.StartTime != nil {
		start, err := dbtime.Parse(*req.StartTime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start_time tidak valid (HH:MM)")
		}
		m.ClassScheduleStartTime = start
	}
	if req.EndTime != nil {
		end, err := dbtime.Parse(*req.EndTime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end_time tidak valid (HH:MM)")
		}
		m.ClassScheduleEndTime = end
	}
	if !m.ClassScheduleEndTime.Time.After(m.ClassScheduleStartTime.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "end_time harus setelah start_time")
	}
	if req.Note != nil {
		m.ClassScheduleNote = req.Note
	}
	switch {
	case req.Status != nil:
		m.ClassScheduleStatus = *req.Status
	case dateChanged:
		m.ClassScheduleStatus = model.ClassScheduleStatusRescheduled
	}
	m.ClassScheduleUpdatedAt = now

	if err := db.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	if dateChanged {
		by, _ := c.Locals(authMw.LocUserID).(string)
		hist := model.ClassScheduleRescheduleModel{
			RescheduleScheduleID: m.ClassScheduleID,
			RescheduleOldDate:    oldDate,
			RescheduleNewDate:    m.ClassScheduleSessionDate,
			RescheduleReason:     req.Reason,
		}
		if by != "" {
			hist.RescheduleBy = &by
		}
		if err := db.Create(&hist).Error; err != nil {
			// riwayat gagal tidak membatalkan perubahan jadwal
			log.Printf("[SCHEDULE] catat riwayat reschedule %s gagal: %v", m.ClassScheduleID, err)
		}
	}

	return helper.JsonUpdated(c, "Sesi berhasil diperbarui", m)
}

/* =========================== LIST =========================== */
// GET /api/a/class-schedules?class_id=&status=
func (ctrl *ClassScheduleController) ListSchedules(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ClassScheduleModel{}).
		Where("class_schedule_class_id = ?", classID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("class_schedule_status = ?", status)
	}

	var rows []model.ClassScheduleModel
	if err := q.Order("class_schedule_session_number ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Data diterima", rows)
}

/* =========================== RIWAYAT RESCHEDULE =========================== */
// GET /api/a/class-schedules/:id/reschedules
func (ctrl *ClassScheduleController) ListReschedules(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var rows []model.ClassScheduleRescheduleModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("reschedule_schedule_id = ?", scheduleID).
		Order("reschedule_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}
	return helper.JsonOK(c, "Data diterima", rows)
}

/* =========================== DELETE =========================== */
// DELETE /api/a/class-schedules/:id (soft delete)
func (ctrl *ClassScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.ClassScheduleModel
	if err := db.Where("class_schedule_id = ?", scheduleID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data sesi")
	}

	if err := db.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	return helper.JsonDeleted(c, "Sesi berhasil dihapus", fiber.Map{"class_schedule_id": m.ClassScheduleID})
}
