package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/classes/dto"
	"sekolahku_backend/internals/features/school/classes/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// Urutan maju mesin status. Perubahan manual tidak boleh mundur;
// cancelled bebas dari status apapun kecuali completed.
var statusRank = map[string]int{
	model.ClassStatusDraft:     0,
	model.ClassStatusPublished: 1,
	model.ClassStatusStarted:   2,
	model.ClassStatusCompleted: 3,
}

func isAllowedStatusChange(from, to string) bool {
	if from == to {
		return true
	}
	if to == model.ClassStatusCancelled {
		return from != model.ClassStatusCompleted
	}
	if from == model.ClassStatusCancelled {
		return false
	}
	return statusRank[to] > statusRank[from]
}

/* =========================== CREATE =========================== */
// POST /api/a/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", m)
}

/* =========================== UPDATE =========================== */
// PUT /api/a/classes/:id
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.ClassModel
	if err := db.Where("class_id = ?", classID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	if req.ClassStatus != nil && !isAllowedStatusChange(m.ClassStatus, *req.ClassStatus) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Status kelas tidak bisa diubah dari "+m.ClassStatus+" ke "+*req.ClassStatus)
	}

	if err := req.ApplyToModel(&m); err != nil {
		return err
	}
	if m.ClassEndDate.Before(m.ClassStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "class_end_date harus setelah class_start_date")
	}

	if err := db.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", m)
}

/* =========================== DETAIL =========================== */
// GET /api/a/classes/:id
func (ctrl *ClassController) GetClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_id = ?", classID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	return helper.JsonOK(c, "Data diterima", m)
}

/* =========================== LIST =========================== */
// GET /api/a/classes?branch_id=&status=&page=&per_page=
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.ClassModel{})

	if branchID, err := uuid.Parse(strings.TrimSpace(c.Query("branch_id"))); err == nil {
		q = q.Where("class_branch_id = ?", branchID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("class_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ClassModel
	if err := q.Order("class_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data diterima", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================== DELETE =========================== */
// DELETE /api/a/classes/:id (soft delete)
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.ClassModel
	if err := db.Where("class_id = ?", classID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	if m.ClassEnrolledCount > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Kelas masih memiliki siswa aktif, tidak bisa dihapus")
	}

	if err := db.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": m.ClassID})
}
