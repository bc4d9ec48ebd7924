package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lineController "sekolahku_backend/internals/features/integrations/line/controller"
	trialController "sekolahku_backend/internals/features/school/trial_bookings/controller"
	"sekolahku_backend/internals/middlewares"
)

// PublicRoutes: endpoint tanpa auth (form landing page & webhook LINE)
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	trialCtrl := trialController.NewTrialBookingController(db)
	webhookCtrl := lineController.NewLineWebhookController(db)

	// form trial dari landing page; rate limit ketat anti spam
	r.Post("/trial-bookings", middlewares.TrialBookingRateLimiter(), trialCtrl.CreateBooking)

	// webhook dari LINE platform (signature dicek di controller)
	r.Post("/line/webhook", webhookCtrl.HandleWebhook)
}
