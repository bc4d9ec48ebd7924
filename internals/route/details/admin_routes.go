package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	invoiceController "sekolahku_backend/internals/features/finance/invoices/controller"
	lineController "sekolahku_backend/internals/features/integrations/line/controller"
	settingController "sekolahku_backend/internals/features/integrations/settings/controller"
	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
	branchController "sekolahku_backend/internals/features/school/branches/controller"
	scheduleController "sekolahku_backend/internals/features/school/class_schedules/controller"
	classController "sekolahku_backend/internals/features/school/classes/controller"
	enrollmentController "sekolahku_backend/internals/features/school/enrollments/controller"
	makeupController "sekolahku_backend/internals/features/school/makeup/controller"
	parentController "sekolahku_backend/internals/features/school/parents/controller"
	studentController "sekolahku_backend/internals/features/school/students/controller"
	trialController "sekolahku_backend/internals/features/school/trial_bookings/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// AdminRoutes: dashboard staff/admin/owner. Semua endpoint di belakang JWT
// + guard role (teacher tidak termasuk).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	r.Use(authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	r.Use(authMw.RequireRolesWithMessage(constants.RoleErrorStaff("dashboard admin"), constants.StaffAndUp...))

	/* ===== Cabang ===== */
	branchCtrl := branchController.NewBranchController(db)
	r.Get("/branches", branchCtrl.ListBranches)
	r.Post("/branches", branchCtrl.CreateBranch)
	r.Put("/branches/:id", branchCtrl.UpdateBranch)
	r.Delete("/branches/:id", branchCtrl.DeleteBranch)

	/* ===== Kelas & status otomatis ===== */
	classCtrl := classController.NewClassController(db)
	r.Get("/classes", classCtrl.ListClasses)
	r.Post("/classes", classCtrl.CreateClass)
	r.Get("/classes/:id", classCtrl.GetClass)
	r.Put("/classes/:id", classCtrl.UpdateClass)
	r.Delete("/classes/:id", classCtrl.DeleteClass)

	/* ===== Sesi kelas ===== */
	scheduleCtrl := scheduleController.NewClassScheduleController(db)
	r.Get("/class-schedules", scheduleCtrl.ListSchedules)
	r.Post("/class-schedules", scheduleCtrl.CreateSchedule)
	r.Put("/class-schedules/:id", scheduleCtrl.UpdateSchedule)
	r.Get("/class-schedules/:id/reschedules", scheduleCtrl.ListReschedules)
	r.Delete("/class-schedules/:id", scheduleCtrl.DeleteSchedule)

	/* ===== Siswa & orang tua ===== */
	studentCtrl := studentController.NewStudentController(db)
	r.Get("/students", studentCtrl.ListStudents)
	r.Post("/students", studentCtrl.CreateStudent)
	r.Get("/students/:id", studentCtrl.GetStudent)
	r.Put("/students/:id", studentCtrl.UpdateStudent)
	r.Delete("/students/:id", studentCtrl.DeleteStudent)

	parentCtrl := parentController.NewParentController(db)
	r.Get("/parents", parentCtrl.ListParents)
	r.Post("/parents", parentCtrl.CreateParent)
	r.Get("/parents/:id", parentCtrl.GetParent)
	r.Put("/parents/:id", parentCtrl.UpdateParent)

	/* ===== Enrollment ===== */
	enrollmentCtrl := enrollmentController.NewEnrollmentController(db)
	r.Get("/enrollments", enrollmentCtrl.ListEnrollments)
	r.Post("/enrollments", enrollmentCtrl.CreateEnrollment)
	r.Put("/enrollments/:id/status", enrollmentCtrl.UpdateEnrollmentStatus)

	/* ===== Absensi ===== */
	attendanceCtrl := attendanceController.NewAttendanceController(db)
	r.Get("/attendance", attendanceCtrl.ListBySchedule)
	r.Get("/attendance/summary", attendanceCtrl.SummaryByStudent)
	r.Post("/attendance/bulk", attendanceCtrl.BulkUpsert)

	/* ===== Makeup (izin & penjadwalan) ===== */
	makeupCtrl := makeupController.NewMakeupAdminController(db)
	r.Get("/makeup", makeupCtrl.ListMakeups)
	r.Put("/makeup/:id/schedule", makeupCtrl.ScheduleMakeup)
	r.Delete("/makeup/:id", makeupCtrl.DeleteMakeup)

	/* ===== Trial booking ===== */
	trialCtrl := trialController.NewTrialBookingController(db)
	r.Get("/trial-bookings", trialCtrl.ListBookings)
	r.Put("/trial-bookings/:id/status", trialCtrl.UpdateStatus)
	r.Post("/trial-bookings/:id/convert", trialCtrl.ConvertBooking)

	/* ===== Invoice (Midtrans Snap) ===== */
	invoiceCtrl := invoiceController.NewInvoiceController(db)
	r.Get("/invoices", invoiceCtrl.ListInvoices)
	r.Post("/invoices", invoiceCtrl.CreateInvoice)
	r.Put("/invoices/:id/mark-paid", invoiceCtrl.MarkPaid)

	/* ===== Integrasi (kredensial: khusus admin/owner) ===== */
	adminOnly := authMw.RequireRolesWithMessage(constants.RoleErrorAdmin("pengaturan integrasi"), constants.AdminAndUp...)
	settingCtrl := settingController.NewAppSettingController(db)
	r.Get("/settings/:key", adminOnly, settingCtrl.GetSetting)
	r.Put("/settings/:key", adminOnly, settingCtrl.PutSetting)

	webhookCtrl := lineController.NewLineWebhookController(db)
	r.Get("/line/webhook-events", webhookCtrl.ListRecentEvents)
}
