package controller

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/integrations/settings/model"
	"sekolahku_backend/internals/features/integrations/settings/service"
	helper "sekolahku_backend/internals/helpers"
)

type AppSettingController struct {
	DB *gorm.DB
}

func NewAppSettingController(db *gorm.DB) *AppSettingController {
	return &AppSettingController{DB: db}
}

// kunci yang boleh diakses lewat API; selain ini ditolak
var allowedKeys = map[string]bool{
	model.SettingKeyLineMessaging:       true,
	model.SettingKeyFacebookConversions: true,
}

/* =========================== GET =========================== */
// GET /api/a/settings/:key
func (ctrl *AppSettingController) GetSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if !allowedKeys[key] {
		return fiber.NewError(fiber.StatusNotFound, "Setting tidak dikenal")
	}

	var value map[string]any
	if err := service.Get(ctrl.DB.WithContext(c.Context()), key, &value); err != nil {
		if err == service.ErrSettingNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Setting belum diisi")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil setting")
	}

	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"setting_key":   key,
		"setting_value": value,
	})
}

/* =========================== PUT =========================== */
// PUT /api/a/settings/:key (body = value JSON utuh)
func (ctrl *AppSettingController) PutSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if !allowedKeys[key] {
		return fiber.NewError(fiber.StatusNotFound, "Setting tidak dikenal")
	}

	var value map[string]any
	if err := json.Unmarshal(c.Body(), &value); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body harus berupa objek JSON")
	}
	if len(value) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak boleh kosong")
	}

	if err := service.Put(ctrl.DB.WithContext(c.Context()), key, value); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan setting")
	}

	return helper.JsonUpdated(c, "Setting tersimpan", fiber.Map{
		"setting_key": key,
	})
}
