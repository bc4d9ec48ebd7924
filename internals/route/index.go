package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/route/details"
)

// SetupRoutes memasang seluruh route aplikasi.
// Grup: /api/public (tanpa auth), /api/liff (tanpa auth + rate limit ketat),
// /api/a (staff ke atas, JWT), /api/cron (secret query).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.PublicRoutes(api.Group("/public"), db)
	details.LiffRoutes(api.Group("/liff"), db)
	details.AdminRoutes(api.Group("/a"), db)
	details.CronRoutes(api.Group("/cron"), db)
}
