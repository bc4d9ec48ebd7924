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

	"sekolahku_backend/internals/features/finance/invoices/model"
	"sekolahku_backend/internals/features/finance/invoices/service"
	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	parentModel "sekolahku_backend/internals/features/school/parents/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

var validate = validator.New()

type createInvoiceRequest struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" validate:"required"`
	Amount       int64     `json:"amount" validate:"required,gt=0"`
	Description  *string   `json:"description" validate:"omitempty,max=500"`
}

/* =========================== CREATE + SNAP =========================== */
// POST /api/a/invoices
// Membuat tagihan lalu minta Snap token ke Midtrans. Kalau Midtrans gagal,
// invoice tetap tersimpan tanpa token (bisa di-retry dari detail).
func (ctrl *InvoiceController) CreateInvoice(c *fiber.Ctx) error {
	var req createInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := ctrl.DB.WithContext(c.Context())

	var enr enrollmentModel.EnrollmentModel
	if err := db.Where("enrollment_id = ?", req.EnrollmentID).First(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data enrollment")
	}

	inv := model.InvoiceModel{
		InvoiceEnrollmentID: req.EnrollmentID,
		InvoiceOrderID:      fmt.Sprintf("INV-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		InvoiceAmount:       req.Amount,
		InvoiceDescription:  req.Description,
		InvoiceStatus:       model.InvoiceStatusPending,
	}
	if err := db.Create(&inv).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat invoice")
	}

	customerName, email := ctrl.billingContact(db, enr.EnrollmentStudentID)
	token, err := service.GenerateSnapToken(inv, customerName, email)
	if err == nil {
		inv.InvoiceSnapToken = &token
		_ = db.Model(&model.InvoiceModel{}).
			Where("invoice_id = ?", inv.InvoiceID).
			Update("invoice_snap_token", token).Error
	}

	return helper.JsonCreated(c, "Invoice berhasil dibuat", inv)
}

// billingContact: nama + email penagihan dari siswa → orang tuanya
func (ctrl *InvoiceController) billingContact(db *gorm.DB, studentID uuid.UUID) (string, string) {
	var student studentModel.StudentModel
	if err := db.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		return "Pelanggan", ""
	}
	name := student.StudentName
	email := ""
	if student.StudentParentID != nil {
		var parent parentModel.ParentModel
		if err := db.Where("parent_id = ?", student.StudentParentID).First(&parent).Error; err == nil {
			name = parent.ParentName
			if parent.ParentEmail != nil {
				email = *parent.ParentEmail
			}
		}
	}
	return name, email
}

/* =========================== TANDAI LUNAS =========================== */
// PUT /api/a/invoices/:id/mark-paid
// Dipakai saat pembayaran dikonfirmasi manual (transfer / cash).
func (ctrl *InvoiceController) MarkPaid(c *fiber.Ctx) error {
	invoiceID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	db := ctrl.DB.WithContext(c.Context())

	var inv model.InvoiceModel
	if err := db.Where("invoice_id = ?", invoiceID).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data invoice")
	}
	if inv.InvoiceStatus == model.InvoiceStatusPaid {
		return helper.JsonOK(c, "Invoice sudah lunas", inv)
	}
	if inv.InvoiceStatus == model.InvoiceStatusCancelled {
		return fiber.NewError(fiber.StatusBadRequest, "Invoice sudah dibatalkan")
	}

	now := time.Now()
	if err := db.Model(&model.InvoiceModel{}).
		Where("invoice_id = ?", inv.InvoiceID).
		Updates(map[string]any{
			"invoice_status":     model.InvoiceStatusPaid,
			"invoice_paid_at":    now,
			"invoice_updated_at": now,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui invoice")
	}

	inv.InvoiceStatus = model.InvoiceStatusPaid
	inv.InvoicePaidAt = &now
	return helper.JsonUpdated(c, "Invoice ditandai lunas", inv)
}

/* =========================== LIST =========================== */
// GET /api/a/invoices?enrollment_id=&status=&page=&per_page=
func (ctrl *InvoiceController) ListInvoices(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.InvoiceModel{})

	if enrollmentID, err := uuid.Parse(strings.TrimSpace(c.Query("enrollment_id"))); err == nil {
		q = q.Where("invoice_enrollment_id = ?", enrollmentID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("invoice_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.InvoiceModel
	if err := q.Order("invoice_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data diterima", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
