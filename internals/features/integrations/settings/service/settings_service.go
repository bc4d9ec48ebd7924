package service

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settingModel "sekolahku_backend/internals/features/integrations/settings/model"
)

var ErrSettingNotFound = errors.New("setting tidak ditemukan")

// Get membaca satu setting dan unmarshal value-nya ke out.
func Get(db *gorm.DB, key string, out any) error {
	var m settingModel.AppSettingModel
	if err := db.Where("setting_key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSettingNotFound
		}
		return err
	}
	return json.Unmarshal(m.SettingValue, out)
}

// Put menulis (upsert) satu setting.
func Put(db *gorm.DB, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m := settingModel.AppSettingModel{
		SettingKey:       key,
		SettingValue:     datatypes.JSON(raw),
		SettingUpdatedAt: time.Now(),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_updated_at"}),
	}).Create(&m).Error
}
