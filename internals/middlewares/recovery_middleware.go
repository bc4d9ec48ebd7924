package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"sekolahku_backend/internals/configs"
)

// RecoveryMiddleware menangkap panic dan meneruskannya sebagai error 500
// (pesan ke client diatur helper.FromFiberError). Stack trace lengkap hanya
// dicetak saat development; di production cukup satu baris ber-request-id.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			reqid, _ := c.Locals("reqid").(string)
			if configs.IsDevelopment() {
				log.Printf("[PANIC] id=%s %s %s: %v\n%s", reqid, c.Method(), c.OriginalURL(), e, debug.Stack())
				return
			}
			log.Printf("[PANIC] id=%s %s %s: %v", reqid, c.Method(), c.OriginalURL(), e)
		},
	})
}
