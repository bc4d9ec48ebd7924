package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/parents/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

var validate = validator.New()

type parentRequest struct {
	ParentName    string  `json:"parent_name" validate:"required,max=120"`
	ParentPhone   string  `json:"parent_phone" validate:"required,max=30"`
	ParentEmail   *string `json:"parent_email" validate:"omitempty,email,max=160"`
	ParentAddress *string `json:"parent_address" validate:"omitempty"`
}

/* =========================== CREATE =========================== */
// POST /api/a/parents
func (ctrl *ParentController) CreateParent(c *fiber.Ctx) error {
	var req parentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ParentName = strings.TrimSpace(req.ParentName)
	req.ParentPhone = strings.TrimSpace(req.ParentPhone)
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := model.ParentModel{
		ParentName:    req.ParentName,
		ParentPhone:   req.ParentPhone,
		ParentEmail:   req.ParentEmail,
		ParentAddress: req.ParentAddress,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data orang tua")
	}
	return helper.JsonCreated(c, "Orang tua berhasil dibuat", m)
}

/* =========================== UPDATE =========================== */
// PUT /api/a/parents/:id
func (ctrl *ParentController) UpdateParent(c *fiber.Ctx) error {
	parentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req parentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ParentName = strings.TrimSpace(req.ParentName)
	req.ParentPhone = strings.TrimSpace(req.ParentPhone)
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.ParentModel
	if err := db.Where("parent_id = ?", parentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Orang tua tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data orang tua")
	}

	m.ParentName = req.ParentName
	m.ParentPhone = req.ParentPhone
	m.ParentEmail = req.ParentEmail
	m.ParentAddress = req.ParentAddress

	if err := db.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data orang tua")
	}
	return helper.JsonUpdated(c, "Orang tua berhasil diperbarui", m)
}

/* =========================== TAUTKAN LINE =========================== */
// POST /api/liff/link-parent
// Dipanggil dari LIFF setelah login LINE: menautkan line_user_id ke parent
// berdasarkan nomor telepon terdaftar.
func (ctrl *ParentController) LinkLineAccount(c *fiber.Ctx) error {
	var req struct {
		Phone      string `json:"phone" validate:"required,max=30"`
		LineUserID string `json:"line_user_id" validate:"required,max=64"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Phone = strings.TrimSpace(req.Phone)
	req.LineUserID = strings.TrimSpace(req.LineUserID)
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.ParentModel
	if err := db.Where("parent_phone = ?", req.Phone).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Nomor telepon tidak terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data orang tua")
	}

	if err := db.Model(&model.ParentModel{}).
		Where("parent_id = ?", m.ParentID).
		Update("parent_line_user_id", req.LineUserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menautkan akun LINE")
	}

	return helper.JsonOK(c, "Akun LINE berhasil ditautkan", fiber.Map{
		"parent_id": m.ParentID,
	})
}

/* =========================== DETAIL + ANAK =========================== */
// GET /api/a/parents/:id
func (ctrl *ParentController) GetParent(c *fiber.Ctx) error {
	parentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.ParentModel
	if err := db.Where("parent_id = ?", parentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Orang tua tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data orang tua")
	}

	var children []studentModel.StudentModel
	if err := db.Where("student_parent_id = ?", parentID).
		Order("student_name ASC").Find(&children).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"parent":   m,
		"children": children,
	})
}

/* =========================== LIST =========================== */
// GET /api/a/parents?q=&page=&per_page=
func (ctrl *ParentController) ListParents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.ParentModel{})
	if keyword := strings.TrimSpace(c.Query("q")); keyword != "" {
		q = q.Where("parent_name ILIKE ? OR parent_phone LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ParentModel
	if err := q.Order("parent_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data diterima", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
