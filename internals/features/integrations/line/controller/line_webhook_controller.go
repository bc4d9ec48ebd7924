package controller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/integrations/line/model"
	"sekolahku_backend/internals/features/integrations/line/service"
	settingModel "sekolahku_backend/internals/features/integrations/settings/model"
	settingService "sekolahku_backend/internals/features/integrations/settings/service"
	helper "sekolahku_backend/internals/helpers"
)

type LineWebhookController struct {
	DB *gorm.DB
}

func NewLineWebhookController(db *gorm.DB) *LineWebhookController {
	return &LineWebhookController{DB: db}
}

/* =========================== WEBHOOK =========================== */
// POST /api/public/line/webhook
// Selalu balas 200 supaya LINE tidak retry terus menerus; event mentah
// dipersist ke webhook_events untuk diperiksa belakangan.
func (ctrl *LineWebhookController) HandleWebhook(c *fiber.Ctx) error {
	body := c.Body()
	db := ctrl.DB.WithContext(c.Context())

	if !ctrl.verifySignature(db, body, c.Get("X-Line-Signature")) {
		log.Printf("[LINE] webhook signature tidak valid, event diabaikan")
		return c.SendStatus(fiber.StatusOK)
	}

	var envelope struct {
		Events []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Events) == 0 {
		// verifikasi endpoint dari console LINE mengirim body kosong
		return c.SendStatus(fiber.StatusOK)
	}

	for _, raw := range envelope.Events {
		var head struct {
			Type string `json:"type"`
		}
		_ = json.Unmarshal(raw, &head)

		rec := model.WebhookEventModel{
			WebhookEventSource:  "line",
			WebhookEventPayload: datatypes.JSON(raw),
		}
		if head.Type != "" {
			rec.WebhookEventType = &head.Type
		}
		if err := db.Create(&rec).Error; err != nil {
			log.Printf("[LINE] simpan webhook event gagal: %v", err)
		}
	}

	return c.SendStatus(fiber.StatusOK)
}

// verifySignature: HMAC-SHA256 body dengan channel secret, dibandingkan
// dengan header X-Line-Signature (base64). Secret belum diisi = lolos,
// supaya setup awal tidak buntu.
func (ctrl *LineWebhookController) verifySignature(db *gorm.DB, body []byte, signature string) bool {
	var creds service.MessagingCredentials
	if err := settingService.Get(db, settingModel.SettingKeyLineMessaging, &creds); err != nil {
		return true
	}
	secret := strings.TrimSpace(creds.ChannelSecret)
	if secret == "" {
		return true
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

/* =========================== LIST EVENT =========================== */
// GET /api/a/line/webhook-events?type=&limit=
func (ctrl *LineWebhookController) ListRecentEvents(c *fiber.Ctx) error {
	limit := 50
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 && n <= 200 {
		limit = n
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.WebhookEventModel{}).
		Where("webhook_event_source = ?", "line")

	if evType := strings.TrimSpace(c.Query("type")); evType != "" {
		q = q.Where("webhook_event_type = ?", evType)
	}

	var rows []model.WebhookEventModel
	if err := q.Order("webhook_event_received_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Data diterima", rows)
}
