package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParentModel merepresentasikan tabel `parents`
type ParentModel struct {
	ParentID uuid.UUID `json:"parent_id" gorm:"column:parent_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ParentName    string  `json:"parent_name" gorm:"column:parent_name;type:varchar(120);not null"`
	ParentPhone   string  `json:"parent_phone" gorm:"column:parent_phone;type:varchar(30);not null"`
	ParentEmail   *string `json:"parent_email,omitempty" gorm:"column:parent_email;type:varchar(160)"`
	ParentAddress *string `json:"parent_address,omitempty" gorm:"column:parent_address;type:text"`

	// Terisi setelah orang tua menautkan akun LINE lewat LIFF
	ParentLineUserID *string `json:"parent_line_user_id,omitempty" gorm:"column:parent_line_user_id;type:varchar(64);index"`

	ParentCreatedAt time.Time      `json:"parent_created_at" gorm:"column:parent_created_at;type:timestamptz;not null;default:now()"`
	ParentUpdatedAt time.Time      `json:"parent_updated_at" gorm:"column:parent_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt       gorm.DeletedAt `json:"parent_deleted_at,omitempty" gorm:"column:parent_deleted_at;type:timestamptz;index"`
}

func (ParentModel) TableName() string {
	return "parents"
}
