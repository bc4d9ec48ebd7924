package controller

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/school/classes/service"
	helper "sekolahku_backend/internals/helpers"
)

type ClassStatusCronController struct {
	DB *gorm.DB
}

func NewClassStatusCronController(db *gorm.DB) *ClassStatusCronController {
	return &ClassStatusCronController{DB: db}
}

/* =========================== CRON =========================== */
// GET /api/cron/update-class-status?secret=...
// Dipanggil scheduler eksternal. Secret dicek sebelum menyentuh DB;
// hasil batch selalu 200 walau ada error per kelas (lihat field errors).
func (ctrl *ClassStatusCronController) UpdateClassStatus(c *fiber.Ctx) error {
	secret := c.Query("secret")
	if configs.CronSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(configs.CronSecret)) != 1 {
		return fiber.NewError(fiber.StatusUnauthorized, "Secret tidak valid")
	}

	summary := service.UpdateClassStatuses(ctrl.DB.WithContext(c.Context()), time.Now())

	return helper.JsonOK(c, "Update status kelas selesai", summary)
}
