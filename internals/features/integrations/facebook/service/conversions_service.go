package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	settingModel "sekolahku_backend/internals/features/integrations/settings/model"
	settingService "sekolahku_backend/internals/features/integrations/settings/service"
)

const conversionsEndpoint = "https://graph.facebook.com/v18.0/%s/events"

var ErrNotConfigured = errors.New("kredensial Facebook Conversions belum diisi di app_settings")

// ConversionsCredentials: isi app_settings key `facebook_conversions`
type ConversionsCredentials struct {
	PixelID     string `json:"pixel_id"`
	AccessToken string `json:"access_token"`
}

// Client: klien tipis ke Facebook Conversions API (server-side events).
type Client struct {
	pixelID    string
	token      string
	httpClient *http.Client
}

func NewClient(pixelID, accessToken string) *Client {
	return &Client{
		pixelID:    strings.TrimSpace(pixelID),
		token:      strings.TrimSpace(accessToken),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func NewClientFromSettings(db *gorm.DB) (*Client, error) {
	var creds ConversionsCredentials
	if err := settingService.Get(db, settingModel.SettingKeyFacebookConversions, &creds); err != nil {
		if errors.Is(err, settingService.ErrSettingNotFound) {
			return nil, ErrNotConfigured
		}
		return nil, err
	}
	if creds.PixelID == "" || creds.AccessToken == "" {
		return nil, ErrNotConfigured
	}
	return NewClient(creds.PixelID, creds.AccessToken), nil
}

/* =========================== HASHING =========================== */

// HashIdentifier: normalisasi (trim + lowercase) lalu SHA-256 hex,
// sesuai aturan customer information parameters Facebook.
func HashIdentifier(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// NormalizePhone: buang semua karakter non-digit, ubah prefix 0 → 62
// (format E.164 tanpa tanda plus)
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}
	return digits
}

/* =========================== EVENTS =========================== */

// LeadEvent: satu event konversi (mis. trial booking dikonversi jadi siswa)
type LeadEvent struct {
	EventName string
	EventTime time.Time
	Email     string
	Phone     string
}

type userData struct {
	EM []string `json:"em,omitempty"`
	PH []string `json:"ph,omitempty"`
}

type eventPayload struct {
	EventName    string   `json:"event_name"`
	EventTime    int64    `json:"event_time"`
	ActionSource string   `json:"action_source"`
	UserData     userData `json:"user_data"`
}

// SendLeadEvent mengirim satu server event. Best-effort di semua caller:
// kegagalan dilog, tidak pernah membatalkan operasi utama.
func (c *Client) SendLeadEvent(ctx context.Context, ev LeadEvent) error {
	ud := userData{}
	if h := HashIdentifier(ev.Email); h != "" {
		ud.EM = []string{h}
	}
	if p := NormalizePhone(ev.Phone); p != "" {
		ud.PH = []string{HashIdentifier(p)}
	}

	body, err := json.Marshal(map[string]any{
		"data": []eventPayload{{
			EventName:    ev.EventName,
			EventTime:    ev.EventTime.Unix(),
			ActionSource: "system_generated",
			UserData:     ud,
		}},
		"access_token": c.token,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf(conversionsEndpoint, c.pixelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("facebook conversions gagal: status=%d body=%s", resp.StatusCode, string(raw))
	}
	return nil
}
