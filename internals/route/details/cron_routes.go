package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "sekolahku_backend/internals/features/school/classes/controller"
)

// CronRoutes: endpoint untuk scheduler eksternal (cron-job.org / Railway cron).
// Auth pakai query secret, bukan JWT.
func CronRoutes(r fiber.Router, db *gorm.DB) {
	cronCtrl := classController.NewClassStatusCronController(db)
	r.Get("/update-class-status", cronCtrl.UpdateClassStatus)
}
