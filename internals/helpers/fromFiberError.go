package helper

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
)

// FromFiberError mengubah error keluar controller menjadi response JSON
// konsisten via helper.JsonError. Error bisnis (*fiber.Error) diteruskan
// apa adanya; error tak terduga jadi 500 generik, pesan asli hanya
// dibuka saat development.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	if configs.IsDevelopment() {
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
}
