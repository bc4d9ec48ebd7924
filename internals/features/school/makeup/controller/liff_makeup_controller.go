package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceService "sekolahku_backend/internals/features/school/attendance/service"
	scheduleModel "sekolahku_backend/internals/features/school/class_schedules/model"
	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	"sekolahku_backend/internals/features/school/makeup/dto"
	"sekolahku_backend/internals/features/school/makeup/model"
	"sekolahku_backend/internals/features/school/makeup/service"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* ================= Controller & Constructor ================= */

// LiffMakeupController: endpoint self-service ortu (kanal LIFF).
// Tanpa login; identitas dikirim eksplisit di payload.
type LiffMakeupController struct {
	DB *gorm.DB
}

func NewLiffMakeupController(db *gorm.DB) *LiffMakeupController {
	return &LiffMakeupController{DB: db}
}

var validate = validator.New()

/* =========================== IZIN (LEAVE REQUEST) =========================== */
// POST /api/liff/leave-request
func (ctrl *LiffMakeupController) CreateLeaveRequest(c *fiber.Ctx) error {
	var req dto.LeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctrl.DB.WithContext(c.Context())
	now := time.Now()
	loc := dbtime.AppLocation()

	// (a) enrollment aktif di kelas tsb
	var enrollment enrollmentModel.EnrollmentModel
	if err := db.
		Where(`enrollment_student_id = ? AND enrollment_class_id = ? AND enrollment_status = ?`,
			req.StudentID, req.ClassID, enrollmentModel.EnrollmentStatusActive).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data enrollment")
	}

	// (b) sesi ada & milik kelas yang sama
	var sched scheduleModel.ClassScheduleModel
	if err := db.
		Where("class_schedule_id = ? AND class_schedule_class_id = ?", req.ScheduleID, req.ClassID).
		First(&sched).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data sesi")
	}

	// (c) tidak boleh retroaktif
	if service.IsRetroactive(sched.ClassScheduleSessionDate, now, loc) {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak bisa mengajukan izin untuk sesi yang sudah berjalan/lewat")
	}

	// (d) belum ada makeup aktif untuk sesi ini (pre-check ramah;
	//     race tetap dijaga unique index saat insert di bawah)
	var existing int64
	if err := db.Model(&model.MakeupModel{}).
		Where(`makeup_student_id = ? AND makeup_class_id = ? AND makeup_schedule_id = ?
			AND makeup_status <> ?`,
			req.StudentID, req.ClassID, req.ScheduleID, model.MakeupStatusCompleted).
		Count(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa izin sebelumnya")
	}
	if existing > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Izin untuk sesi ini sudah pernah diajukan")
	}

	// (e) kuota gabungan (makeup terjadwal + absen) masih di bawah limit
	quota, err := service.CountQuota(db, req.StudentID, req.ClassID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kuota")
	}
	if quota.Exceeded() {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest,
			"Kuota izin untuk kelas ini sudah habis", fiber.Map{
				"quota_used":        quota.Used(),
				"quota_limit":       quota.Limit,
				"scheduled_makeups": quota.ScheduledMakeups,
				"absent_sessions":   quota.AbsentSessions,
			})
	}

	// Parent diambil dari data siswa (untuk notifikasi saat dijadwalkan)
	var student studentModel.StudentModel
	if err := db.Where("student_id = ?", req.StudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	m := &model.MakeupModel{
		MakeupStudentID:             req.StudentID,
		MakeupParentID:              student.StudentParentID,
		MakeupClassID:               req.ClassID,
		MakeupScheduleID:            req.ScheduleID,
		MakeupSource:                model.MakeupSourceParent,
		MakeupStatus:                model.MakeupStatusPending,
		MakeupReason:                req.Reason,
		MakeupOriginalSessionNumber: sched.ClassScheduleSessionNumber,
		MakeupOriginalDate:          sched.ClassScheduleSessionDate,
	}
	if err := db.Create(m).Error; err != nil {
		// dua request bersamaan: yang kalah kena unique index, bukan double insert
		if service.IsDuplicateActiveMakeupErr(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Izin untuk sesi ini sudah pernah diajukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat record izin")
	}

	// Side effect best-effort: tandai absen di sesi asal.
	// Kalau gagal, record izin tetap dianggap berhasil (hanya dilog).
	if err := attendanceService.SyncAbsentForLeave(db, req.ScheduleID, req.StudentID, "Izin: "+req.Reason); err != nil {
		log.Printf("[MAKEUP] sync attendance absen gagal (makeup=%s): %v", m.MakeupID, err)
	}

	return helper.JsonCreated(c, "Izin berhasil diajukan", fiber.Map{
		"makeup_id":   m.MakeupID,
		"quota_used":  quota.Used() + 1,
		"quota_limit": quota.Limit,
	})
}

/* =========================== BATAL IZIN =========================== */
// POST /api/liff/cancel-leave
func (ctrl *LiffMakeupController) CancelLeave(c *fiber.Ctx) error {
	var req dto.CancelLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctrl.DB.WithContext(c.Context())
	now := time.Now()
	loc := dbtime.AppLocation()

	var m model.MakeupModel
	if err := db.
		Where(`makeup_id = ? AND makeup_student_id = ? AND makeup_class_id = ? AND makeup_schedule_id = ?`,
			req.MakeupID, req.StudentID, req.ClassID, req.ScheduleID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Izin tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data izin")
	}

	if m.MakeupStatus != model.MakeupStatusPending {
		return fiber.NewError(fiber.StatusBadRequest, "Izin sudah dijadwalkan, tidak bisa dibatalkan sendiri")
	}
	if service.IsRetroactive(m.MakeupOriginalDate, now, loc) {
		return fiber.NewError(fiber.StatusBadRequest, "Sesi sudah lewat, izin tidak bisa dibatalkan")
	}

	if err := db.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan izin")
	}

	// best-effort: hapus baris absen yang dibuat saat izin
	if err := attendanceService.DeleteForSchedule(db, req.ScheduleID, req.StudentID); err != nil {
		log.Printf("[MAKEUP] hapus attendance gagal (makeup=%s): %v", m.MakeupID, err)
	}

	return helper.JsonOK(c, "Izin berhasil dibatalkan", fiber.Map{
		"makeup_id": m.MakeupID,
	})
}

/* =========================== LIST IZIN (LIFF) =========================== */
// GET /api/liff/makeups?student_id=&class_id=
func (ctrl *LiffMakeupController) ListMyMakeups(c *fiber.Ctx) error {
	studentID, err := parseUUIDQuery(c, "student_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.MakeupModel{}).
		Where("makeup_student_id = ?", studentID)

	if classID, err := parseUUIDQuery(c, "class_id"); err == nil {
		q = q.Where("makeup_class_id = ?", classID)
	}

	var rows []model.MakeupModel
	if err := q.Order("makeup_created_at DESC").Limit(50).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.MakeupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i]))
	}
	return helper.JsonOK(c, "Data diterima", out)
}
