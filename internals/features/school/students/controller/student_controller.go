package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

type studentRequest struct {
	StudentBranchID   uuid.UUID  `json:"student_branch_id" validate:"required"`
	StudentParentID   *uuid.UUID `json:"student_parent_id"`
	StudentName       string     `json:"student_name" validate:"required,max=120"`
	StudentNickname   *string    `json:"student_nickname" validate:"omitempty,max=60"`
	StudentBirthdate  *string    `json:"student_birthdate" validate:"omitempty"` // YYYY-MM-DD
	StudentGradeLevel *string    `json:"student_grade_level" validate:"omitempty,max=40"`
	StudentIsActive   *bool      `json:"student_is_active"`
}

func (r *studentRequest) birthdate() (*time.Time, error) {
	if r.StudentBirthdate == nil || strings.TrimSpace(*r.StudentBirthdate) == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.StudentBirthdate))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "student_birthdate tidak valid (YYYY-MM-DD)")
	}
	return &d, nil
}

/* =========================== CREATE =========================== */
// POST /api/a/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.StudentName = strings.TrimSpace(req.StudentName)
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	birthdate, err := req.birthdate()
	if err != nil {
		return err
	}

	m := model.StudentModel{
		StudentBranchID:   req.StudentBranchID,
		StudentParentID:   req.StudentParentID,
		StudentName:       req.StudentName,
		StudentNickname:   req.StudentNickname,
		StudentBirthdate:  birthdate,
		StudentGradeLevel: req.StudentGradeLevel,
		StudentIsActive:   true,
	}
	if req.StudentIsActive != nil {
		m.StudentIsActive = *req.StudentIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat siswa")
	}
	return helper.JsonCreated(c, "Siswa berhasil dibuat", m)
}

/* =========================== UPDATE =========================== */
// PUT /api/a/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.StudentName = strings.TrimSpace(req.StudentName)
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	birthdate, err := req.birthdate()
	if err != nil {
		return err
	}

	db := ctrl.DB.WithContext(c.Context())

	var m model.StudentModel
	if err := db.Where("student_id = ?", studentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	m.StudentBranchID = req.StudentBranchID
	m.StudentParentID = req.StudentParentID
	m.StudentName = req.StudentName
	m.StudentNickname = req.StudentNickname
	m.StudentBirthdate = birthdate
	m.StudentGradeLevel = req.StudentGradeLevel
	if req.StudentIsActive != nil {
		m.StudentIsActive = *req.StudentIsActive
	}

	if err := db.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", m)
}

/* =========================== DETAIL =========================== */
// GET /api/a/students/:id
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ?", studentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, "Data diterima", m)
}

/* =========================== LIST =========================== */
// GET /api/a/students?branch_id=&parent_id=&q=&page=&per_page=
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.StudentModel{})

	if branchID, err := uuid.Parse(strings.TrimSpace(c.Query("branch_id"))); err == nil {
		q = q.Where("student_branch_id = ?", branchID)
	}
	if parentID, err := uuid.Parse(strings.TrimSpace(c.Query("parent_id"))); err == nil {
		q = q.Where("student_parent_id = ?", parentID)
	}
	if keyword := strings.TrimSpace(c.Query("q")); keyword != "" {
		q = q.Where("student_name ILIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.StudentModel
	if err := q.Order("student_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data diterima", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================== DELETE =========================== */
// DELETE /api/a/students/:id (soft delete)
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ?", studentID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": studentID})
}
