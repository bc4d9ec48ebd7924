package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat satu baris akses per request, membawa
// request-id yang sama dengan header X-Request-ID (diisi di main.go).
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[REQ] ${time} id=${locals:reqid} ${ip} ${method} ${path} status=${status} dur=${latency}\n",
	})
}
