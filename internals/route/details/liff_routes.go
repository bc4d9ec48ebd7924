package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	makeupController "sekolahku_backend/internals/features/school/makeup/controller"
	parentController "sekolahku_backend/internals/features/school/parents/controller"
	"sekolahku_backend/internals/middlewares"
)

// LiffRoutes: endpoint self-service ortu dari dalam LIFF (LINE mini app).
// Tanpa login; identitas dikirim eksplisit, dibatasi rate limiter khusus.
func LiffRoutes(r fiber.Router, db *gorm.DB) {
	r.Use(middlewares.LiffRateLimiter())

	makeupCtrl := makeupController.NewLiffMakeupController(db)
	parentCtrl := parentController.NewParentController(db)

	r.Post("/leave-request", makeupCtrl.CreateLeaveRequest)
	r.Post("/cancel-leave", makeupCtrl.CancelLeave)
	r.Get("/makeups", makeupCtrl.ListMyMakeups)

	r.Post("/link-parent", parentCtrl.LinkLineAccount)
}
