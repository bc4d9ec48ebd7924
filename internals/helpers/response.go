package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError memetakan error validator.v10 jadi map field→tag,
// dikirim sebagai 400 dengan rincian per field.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}
