package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
	"sekolahku_backend/internals/features/school/attendance/service"
	scheduleModel "sekolahku_backend/internals/features/school/class_schedules/model"
	helper "sekolahku_backend/internals/helpers"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

/* =========================== BULK UPSERT =========================== */
// POST /api/a/attendance/bulk
// Satu request = absensi satu sesi. Baris yang sudah ada ditimpa.
// Siswa yang ditandai hadir otomatis menyelesaikan makeup terjadwalnya
// (kalau sesi ini memang jadwal penggantinya).
func (ctrl *AttendanceController) BulkUpsert(c *fiber.Ctx) error {
	var req dto.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctrl.DB.WithContext(c.Context())

	var sched scheduleModel.ClassScheduleModel
	if err := db.Where("class_schedule_id = ?", req.ScheduleID).First(&sched).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data sesi")
	}

	checkedBy, _ := c.Locals(authMw.LocUserID).(string)
	now := time.Now()

	saved := 0
	failures := []string{}
	for i := range req.Entries {
		e := req.Entries[i]
		rec := &model.AttendanceModel{
			AttendanceScheduleID: req.ScheduleID,
			AttendanceStudentID:  e.StudentID,
			AttendanceStatus:     e.Status,
			AttendanceNote:       e.Note,
			AttendanceFeedback:   e.Feedback,
			AttendanceCheckedAt:  &now,
		}
		if checkedBy != "" {
			rec.AttendanceCheckedBy = &checkedBy
		}
		if err := service.UpsertAttendance(db, rec); err != nil {
			failures = append(failures, fmt.Sprintf("siswa %s: %v", e.StudentID, err))
			continue
		}
		saved++

		if e.Status == model.AttendanceStatusPresent {
			service.PromoteMakeupOnPresent(db, req.ScheduleID, e.StudentID)
		}
	}

	return helper.JsonOK(c, "Absensi tersimpan", fiber.Map{
		"schedule_id": req.ScheduleID,
		"saved":       saved,
		"failed":      len(failures),
		"errors":      failures,
	})
}

/* =========================== LIST PER SESI =========================== */
// GET /api/a/attendance?schedule_id=
func (ctrl *AttendanceController) ListBySchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(strings.TrimSpace(c.Query("schedule_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "schedule_id tidak valid")
	}

	var rows []model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_schedule_id = ?", scheduleID).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Data diterima", rows)
}

/* =========================== REKAP PER SISWA =========================== */
// GET /api/a/attendance/summary?student_id=&class_id=
// Hitung per status; dipakai staff untuk melihat pemakaian kuota absen.
func (ctrl *AttendanceController) SummaryByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}

	type statusCount struct {
		Status string `json:"status" gorm:"column:attendance_status"`
		Total  int64  `json:"total" gorm:"column:total"`
	}

	var counts []statusCount
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.AttendanceModel{}).
		Select("attendance_status, COUNT(*) AS total").
		Joins(`JOIN class_schedules ON class_schedules.class_schedule_id = attendance.attendance_schedule_id`).
		Where("attendance_student_id = ? AND class_schedules.class_schedule_class_id = ?", studentID, classID).
		Group("attendance_status").
		Scan(&counts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil rekap")
	}

	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"student_id": studentID,
		"class_id":   classID,
		"counts":     counts,
	})
}
