package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lineService "sekolahku_backend/internals/features/integrations/line/service"
	attendanceService "sekolahku_backend/internals/features/school/attendance/service"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/features/school/makeup/dto"
	"sekolahku_backend/internals/features/school/makeup/model"
	"sekolahku_backend/internals/features/school/makeup/service"
	parentModel "sekolahku_backend/internals/features/school/parents/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type MakeupAdminController struct {
	DB *gorm.DB
}

func NewMakeupAdminController(db *gorm.DB) *MakeupAdminController {
	return &MakeupAdminController{DB: db}
}

/* =========================== PENJADWALAN =========================== */
// PUT /api/a/makeup/:id/schedule
// Boleh dipanggil ulang: jadwal lama ditimpa, tanpa riwayat.
func (ctrl *MakeupAdminController) ScheduleMakeup(c *fiber.Ctx) error {
	makeupID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ScheduleMakeupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	date, start, end, err := req.Parse()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format tanggal/jam tidak valid")
	}
	if !end.Time.After(start.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "Jam selesai harus setelah jam mulai")
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.MakeupModel
	if err := db.Where("makeup_id = ?", makeupID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Makeup tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if m.MakeupStatus == model.MakeupStatusCompleted {
		return fiber.NewError(fiber.StatusBadRequest, "Makeup sudah selesai, tidak bisa dijadwalkan ulang")
	}

	now := time.Now()
	scheduledBy, _ := c.Locals(authMw.LocUserID).(string)
	updates := map[string]any{
		"makeup_status":       model.MakeupStatusScheduled,
		"makeup_date":         date,
		"makeup_start_time":   start,
		"makeup_end_time":     end,
		"makeup_scheduled_at": now,
		"makeup_updated_at":   now,
	}
	if scheduledBy != "" {
		updates["makeup_scheduled_by"] = scheduledBy
	}

	if err := db.Model(&model.MakeupModel{}).
		Where("makeup_id = ?", m.MakeupID).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal makeup")
	}

	m.MakeupStatus = model.MakeupStatusScheduled
	m.MakeupDate = &date
	m.MakeupStartTime = &start
	m.MakeupEndTime = &end

	// ===== Notifikasi LINE ke ortu (non-fatal) =====
	notified, notifyNote := ctrl.notifyParent(c, db, &m)

	return helper.JsonUpdated(c, "Jadwal makeup disimpan", fiber.Map{
		"makeup":      dto.FromModel(&m),
		"notified":    notified,
		"notify_note": notifyNote,
	})
}

// notifyParent: kirim pesan jadwal ke LINE ortu. Gagal = flag, bukan error.
func (ctrl *MakeupAdminController) notifyParent(c *fiber.Ctx, db *gorm.DB, m *model.MakeupModel) (bool, string) {
	var student studentModel.StudentModel
	if err := db.Where("student_id = ?", m.MakeupStudentID).First(&student).Error; err != nil {
		return false, "siswa tidak ditemukan"
	}

	parentID := m.MakeupParentID
	if parentID == nil {
		parentID = student.StudentParentID
	}
	if parentID == nil {
		return false, "orang tua belum terhubung"
	}

	var parent parentModel.ParentModel
	if err := db.Where("parent_id = ?", parentID).First(&parent).Error; err != nil {
		return false, "orang tua tidak ditemukan"
	}
	if parent.ParentLineUserID == nil || strings.TrimSpace(*parent.ParentLineUserID) == "" {
		return false, "orang tua belum menautkan LINE"
	}

	var cls classModel.ClassModel
	className := ""
	if err := db.Where("class_id = ?", m.MakeupClassID).First(&cls).Error; err == nil {
		className = cls.ClassName
	}

	client, err := lineService.NewClientFromSettings(db)
	if err != nil {
		log.Printf("[LINE] init client gagal: %v", err)
		return false, "LINE belum dikonfigurasi"
	}

	msg := service.BuildScheduleMessage(student.StudentName, className, *m.MakeupDate,
		*m.MakeupStartTime, *m.MakeupEndTime)
	if err := client.PushText(c.Context(), *parent.ParentLineUserID, msg); err != nil {
		log.Printf("[LINE] push jadwal makeup %s gagal: %v", m.MakeupID, err)
		return false, "pengiriman pesan gagal"
	}
	return true, ""
}

/* =========================== HAPUS (ADMIN) =========================== */
// DELETE /api/a/makeup/:id
func (ctrl *MakeupAdminController) DeleteMakeup(c *fiber.Ctx) error {
	makeupID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	// body opsional (audit)
	var req dto.DeleteMakeupRequest
	_ = c.BodyParser(&req)

	db := ctrl.DB.WithContext(c.Context())

	var m model.MakeupModel
	if err := db.Where("makeup_id = ?", makeupID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Makeup tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if m.MakeupStatus == model.MakeupStatusCompleted {
		return fiber.NewError(fiber.StatusBadRequest, "Makeup yang sudah selesai tidak bisa dihapus")
	}

	if err := db.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if req.DeletedBy != nil || req.Reason != nil {
		log.Printf("[MAKEUP] %s dihapus (by=%v reason=%v)", m.MakeupID, req.DeletedBy, req.Reason)
	}

	// best-effort: hapus baris absen sesi asal
	if err := attendanceService.DeleteForSchedule(db, m.MakeupScheduleID, m.MakeupStudentID); err != nil {
		log.Printf("[MAKEUP] hapus attendance gagal (makeup=%s): %v", m.MakeupID, err)
	}

	return helper.JsonDeleted(c, "Makeup berhasil dihapus", fiber.Map{
		"makeup_id": m.MakeupID,
	})
}

/* =========================== LIST (ADMIN) =========================== */
// GET /api/a/makeup?status=&class_id=&student_id=&page=&per_page=
func (ctrl *MakeupAdminController) ListMakeups(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.MakeupModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("makeup_status = ?", status)
	}
	if classID, err := parseUUIDQuery(c, "class_id"); err == nil {
		q = q.Where("makeup_class_id = ?", classID)
	}
	if studentID, err := parseUUIDQuery(c, "student_id"); err == nil {
		q = q.Where("makeup_student_id = ?", studentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.MakeupModel
	if err := q.Order("makeup_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.MakeupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i]))
	}
	return helper.JsonList(c, "Data diterima", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================== util =========================== */

func parseUUIDQuery(c *fiber.Ctx, key string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Query(key)))
}
