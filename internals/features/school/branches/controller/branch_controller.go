package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/branches/model"
	helper "sekolahku_backend/internals/helpers"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

var validate = validator.New()

type branchRequest struct {
	BranchName     string  `json:"branch_name" validate:"required,max=120"`
	BranchCode     string  `json:"branch_code" validate:"required,max=20"`
	BranchAddress  *string `json:"branch_address" validate:"omitempty"`
	BranchPhone    *string `json:"branch_phone" validate:"omitempty,max=30"`
	BranchIsActive *bool   `json:"branch_is_active"`
}

/* =========================== CREATE =========================== */
// POST /api/a/branches
func (ctrl *BranchController) CreateBranch(c *fiber.Ctx) error {
	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.BranchName = strings.TrimSpace(req.BranchName)
	req.BranchCode = strings.ToUpper(strings.TrimSpace(req.BranchCode))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := model.BranchModel{
		BranchName:     req.BranchName,
		BranchCode:     req.BranchCode,
		BranchAddress:  req.BranchAddress,
		BranchPhone:    req.BranchPhone,
		BranchIsActive: true,
	}
	if req.BranchIsActive != nil {
		m.BranchIsActive = *req.BranchIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return fiber.NewError(fiber.StatusBadRequest, "Kode cabang sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat cabang")
	}
	return helper.JsonCreated(c, "Cabang berhasil dibuat", m)
}

/* =========================== UPDATE =========================== */
// PUT /api/a/branches/:id
func (ctrl *BranchController) UpdateBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.BranchName = strings.TrimSpace(req.BranchName)
	req.BranchCode = strings.ToUpper(strings.TrimSpace(req.BranchCode))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.BranchModel
	if err := db.Where("branch_id = ?", branchID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cabang tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data cabang")
	}

	m.BranchName = req.BranchName
	m.BranchCode = req.BranchCode
	m.BranchAddress = req.BranchAddress
	m.BranchPhone = req.BranchPhone
	if req.BranchIsActive != nil {
		m.BranchIsActive = *req.BranchIsActive
	}

	if err := db.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan cabang")
	}
	return helper.JsonUpdated(c, "Cabang berhasil diperbarui", m)
}

/* =========================== LIST =========================== */
// GET /api/a/branches
func (ctrl *BranchController) ListBranches(c *fiber.Ctx) error {
	var rows []model.BranchModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("branch_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Data diterima", rows)
}

/* =========================== DELETE =========================== */
// DELETE /api/a/branches/:id (soft delete)
func (ctrl *BranchController) DeleteBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("branch_id = ?", branchID).
		Delete(&model.BranchModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus cabang")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cabang tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Cabang berhasil dihapus", fiber.Map{"branch_id": branchID})
}
