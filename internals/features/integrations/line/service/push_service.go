package service

import (
	"bytes"
	"context"
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

const pushEndpoint = "https://api.line.me/v2/bot/message/push"

var ErrNotConfigured = errors.New("kredensial LINE Messaging belum diisi di app_settings")

// MessagingCredentials: isi app_settings key `line_messaging`
type MessagingCredentials struct {
	ChannelAccessToken string `json:"channel_access_token"`
	ChannelSecret      string `json:"channel_secret"`
}

// TextMessage: payload pesan teks LINE Messaging API
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Client: klien tipis ke LINE Messaging API.
// Tidak ada SDK resmi yang dipakai; cukup push message via HTTP.
type Client struct {
	token      string
	httpClient *http.Client
}

func NewClient(channelAccessToken string) *Client {
	return &Client{
		token:      strings.TrimSpace(channelAccessToken),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientFromSettings: ambil token dari tabel app_settings (bukan ENV),
// supaya bisa dirotasi dari dashboard tanpa redeploy.
func NewClientFromSettings(db *gorm.DB) (*Client, error) {
	var creds MessagingCredentials
	if err := settingService.Get(db, settingModel.SettingKeyLineMessaging, &creds); err != nil {
		if errors.Is(err, settingService.ErrSettingNotFound) {
			return nil, ErrNotConfigured
		}
		return nil, err
	}
	if strings.TrimSpace(creds.ChannelAccessToken) == "" {
		return nil, ErrNotConfigured
	}
	return NewClient(creds.ChannelAccessToken), nil
}

// PushText mengirim pesan teks ke satu user LINE.
// Dipanggil sinkron, tanpa retry; kegagalan jadi flag non-fatal di caller.
func (c *Client) PushText(ctx context.Context, to string, text string) error {
	body, err := json.Marshal(pushRequest{
		To:       to,
		Messages: []TextMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pushEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("line push gagal: status=%d body=%s", resp.StatusCode, string(raw))
	}
	return nil
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []TextMessage `json:"messages"`
}
