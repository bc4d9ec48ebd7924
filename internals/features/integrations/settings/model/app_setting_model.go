package model

import (
	"time"

	"gorm.io/datatypes"
)

// Kunci setting yang dipakai integrasi
const (
	SettingKeyLineMessaging       = "line_messaging"
	SettingKeyFacebookConversions = "facebook_conversions"
)

// AppSettingModel merepresentasikan tabel `app_settings`.
// Kredensial integrasi (LINE, Facebook) disimpan di sini, bukan di ENV,
// supaya bisa diganti dari dashboard tanpa redeploy.
type AppSettingModel struct {
	SettingKey   string         `json:"setting_key" gorm:"column:setting_key;type:varchar(60);primaryKey"`
	SettingValue datatypes.JSON `json:"setting_value" gorm:"column:setting_value;type:jsonb;not null"`

	SettingUpdatedAt time.Time `json:"setting_updated_at" gorm:"column:setting_updated_at;type:timestamptz;not null;default:now()"`
}

func (AppSettingModel) TableName() string {
	return "app_settings"
}
